package suite

// SequenceSource replays fixed samples in a loop.
type SequenceSource struct {
	samples []float64
	next    int
	Calls   int
}

func NewSequenceSource(samples ...float64) *SequenceSource {
	if len(samples) == 0 {
		samples = []float64{0.5}
	}
	return &SequenceSource{samples: samples}
}

func (s *SequenceSource) Float64() float64 {
	sample := s.samples[s.next]
	s.next = (s.next + 1) % len(s.samples)
	s.Calls++
	return sample
}
