package suite

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHttpClient is a testify mock of the telegram bot HTTP client.
type MockHttpClient struct {
	mock.Mock
}

func NewMockHttpClient(t *testing.T) *MockHttpClient {
	m := &MockHttpClient{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHttpClient) Do(request *http.Request) (*http.Response, error) {
	args := m.Called(request)

	if fn, ok := args.Get(0).(func(*http.Request) (*http.Response, error)); ok {
		return fn(request)
	}

	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

// OKResponse is a minimal successful Bot API reply.
func OKResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))}
}

func ParseRequestBody(t *testing.T, request *http.Request) map[string]string {
	reader, err := request.MultipartReader()
	require.NoError(t, err)

	form := map[string]string{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		value, _ := io.ReadAll(part)
		form[part.FormName()] = string(value)
	}

	return form
}
