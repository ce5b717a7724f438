package exporter

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mhagen/ecotouchd/ecotouch"
)

// Reader is the slice of the bridge the poller needs.
type Reader interface {
	ReadValues(ctx context.Context, names []string) (map[string]ecotouch.Result, error)
}

// StatePublisher receives every successfully decoded value of a poll cycle.
type StatePublisher interface {
	PublishState(name string, value any)
}

// Poller reads a fixed property set on an interval and fans the values out to
// prometheus and, optionally, MQTT.
type Poller struct {
	reader    Reader
	names     []string
	interval  time.Duration
	metrics   *Metrics
	publisher StatePublisher
}

func NewPoller(reader Reader, names []string, interval time.Duration, metrics *Metrics, publisher StatePublisher) *Poller {
	return &Poller{
		reader:    reader,
		names:     names,
		interval:  interval,
		metrics:   metrics,
		publisher: publisher,
	}
}

// Run polls until ctx is cancelled. The first cycle runs immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	p.PollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.PollOnce(ctx)
		}
	}
}

// PollOnce runs a single poll cycle. A transport or session failure aborts
// the cycle; per-property misses only skip the affected property.
func (p *Poller) PollOnce(ctx context.Context) {
	start := time.Now()
	results, err := p.reader.ReadValues(ctx, p.names)
	if err != nil {
		p.metrics.pollErrors.Inc()
		log.Errorf("poll failed: %v", err)
		return
	}

	for name, res := range results {
		if res.Err != nil || res.Status != ecotouch.StatusOK {
			p.metrics.tagErrors.WithLabelValues(name, res.Status).Inc()
			continue
		}
		td, err := ecotouch.TagByName(name)
		if err != nil {
			continue
		}
		if f, ok := gaugeValue(res.Value); ok {
			p.metrics.tagValue.WithLabelValues(name, td.Unit).Set(f)
		}
		if p.publisher != nil {
			p.publisher.PublishState(name, res.Value)
		}
	}
	p.metrics.pollDuration.Observe(time.Since(start).Seconds())
	p.metrics.lastSuccess.SetToCurrentTime()
}

// gaugeValue maps a decoded property value onto a gauge sample. String-typed
// properties have no numeric rendering and are skipped.
func gaugeValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case ecotouch.TimeOfDay:
		return float64(x.Hour*60 + x.Minute), true
	}
	return 0, false
}
