package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"goldtracker/internal/series"
)

// DefaultToday is the fixed "today" of every suite unless WithToday overrides it.
const DefaultToday = "2025-11-07"

type Option func(s *Suite)

type Suite struct {
	T       *testing.T
	Logger  *slog.Logger
	BaseDir string
	Loc     *time.Location
	Today   time.Time
	Random  series.RandomSource
}

func New(t *testing.T, opts ...Option) (context.Context, *Suite) {
	ctx := context.Background()

	baseDir, err := findProjectRoot()
	if err != nil {
		t.Fatalf("could not get current working directory: %v", err)
	}

	s := &Suite{T: t, BaseDir: baseDir, Loc: time.UTC}
	s.Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.Today = GetDateTime(t, DefaultToday)
	s.Random = NewSequenceSource(0.5)

	for _, opt := range opts {
		opt(s)
	}
	return ctx, s
}

// Clock returns a clock frozen at the suite's today.
func (s *Suite) Clock() func() time.Time {
	return func() time.Time { return s.Today }
}

// Generator returns a generator reading from the suite's random source.
func (s *Suite) Generator() *series.Generator {
	return series.NewGenerator(s.Random)
}

func WithToday(date string) Option {
	return func(s *Suite) {
		s.Today = GetDateTime(s.T, date)
	}
}

// WithSamples makes the random source replay the given samples in a loop.
func WithSamples(samples ...float64) Option {
	return func(s *Suite) {
		s.Random = NewSequenceSource(samples...)
	}
}

// WithRealRandom switches to an unseeded source.
func WithRealRandom() Option {
	return func(s *Suite) {
		s.Random = series.NewRandomSource()
	}
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (go.mod)")
		}
		dir = parent
	}
}
