package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mhagen/ecotouchd/ecotouch"
)

type stubReader struct {
	results map[string]ecotouch.Result
	err     error
	calls   int
}

func (s *stubReader) ReadValues(ctx context.Context, names []string) (map[string]ecotouch.Result, error) {
	s.calls++
	return s.results, s.err
}

type stubPublisher struct {
	published map[string]any
}

func (s *stubPublisher) PublishState(name string, value any) {
	if s.published == nil {
		s.published = map[string]any{}
	}
	s.published[name] = value
}

func TestPollOnce(t *testing.T) {
	reader := &stubReader{results: map[string]ecotouch.Result{
		"TEMPERATURE_OUTSIDE": {Value: -3.2, Status: ecotouch.StatusOK},
		"STATE_COMPRESSOR":    {Value: true, Status: ecotouch.StatusOK},
		"TEMPERATURE_ROOM":    {Status: ecotouch.StatusNotFound},
		"HOLIDAY_ENABLED":     {Status: ecotouch.StatusOK, Err: errors.New("bad raw value")},
	}}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	pub := &stubPublisher{}
	p := NewPoller(reader, []string{"TEMPERATURE_OUTSIDE", "STATE_COMPRESSOR", "TEMPERATURE_ROOM", "HOLIDAY_ENABLED"},
		time.Minute, m, pub)

	p.PollOnce(context.Background())

	if got := testutil.ToFloat64(m.tagValue.WithLabelValues("TEMPERATURE_OUTSIDE", "°C")); got != -3.2 {
		t.Errorf("gauge TEMPERATURE_OUTSIDE = %v, want -3.2", got)
	}
	if got := testutil.ToFloat64(m.tagValue.WithLabelValues("STATE_COMPRESSOR", "")); got != 1 {
		t.Errorf("gauge STATE_COMPRESSOR = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.tagErrors.WithLabelValues("TEMPERATURE_ROOM", ecotouch.StatusNotFound)); got != 1 {
		t.Errorf("miss counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.tagErrors.WithLabelValues("HOLIDAY_ENABLED", ecotouch.StatusOK)); got != 1 {
		t.Errorf("decode error counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.pollErrors); got != 0 {
		t.Errorf("poll error counter = %v, want 0", got)
	}
	if pub.published["TEMPERATURE_OUTSIDE"] != -3.2 {
		t.Errorf("published %v", pub.published)
	}
	if _, ok := pub.published["TEMPERATURE_ROOM"]; ok {
		t.Error("missed property must not be published")
	}
}

func TestPollOnceTransportFailure(t *testing.T) {
	reader := &stubReader{err: errors.New("connection refused")}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	p := NewPoller(reader, []string{"TEMPERATURE_OUTSIDE"}, time.Minute, m, nil)

	p.PollOnce(context.Background())

	if got := testutil.ToFloat64(m.pollErrors); got != 1 {
		t.Errorf("poll error counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.lastSuccess); got != 0 {
		t.Errorf("last success must stay unset, got %v", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	reader := &stubReader{results: map[string]ecotouch.Result{}}
	reg := prometheus.NewRegistry()
	p := NewPoller(reader, nil, 10*time.Millisecond, NewMetrics(reg), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()
	time.Sleep(35 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if reader.calls < 2 {
		t.Errorf("got %d poll cycles, want at least 2", reader.calls)
	}
}
