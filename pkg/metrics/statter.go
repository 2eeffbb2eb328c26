package metrics

import "time"

// Statter is the metric emission interface. The store and monitor emit
// through it; the statsdx subpackage adapts it to statsd and
// testmetrics records calls for assertions.
type Statter interface {
	Inc(metric string, value int64, rate float32) error
	Gauge(metric string, value int64, rate float32) error
	TimingDuration(metric string, value time.Duration, rate float32) error
}

// NoneStatter drops every metric.
var NoneStatter Statter = nopStatter{}

type nopStatter struct{}

func (nopStatter) Inc(string, int64, float32) error                     { return nil }
func (nopStatter) Gauge(string, int64, float32) error                   { return nil }
func (nopStatter) TimingDuration(string, time.Duration, float32) error  { return nil }
