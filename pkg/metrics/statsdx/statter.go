package statsdx

import (
	"time"

	"code.cloudfoundry.org/access/pkg/logx"
	"github.com/cactus/go-statsd-client/statsd"
)

const failureMessage = "failed-to-send-metric"

type Statter struct {
	statsdClient statsd.Statter
	logger       logx.Logger
}

func NewStatter(logger logx.Logger, statsdClient statsd.Statter) *Statter {
	return &Statter{
		statsdClient: statsdClient,
		logger:       logger,
	}
}

func (s *Statter) Inc(metric string, value int64, rate float32) error {
	err := s.statsdClient.Inc(metric, value, rate)
	if err != nil {
		s.logError(metric, value, err)
	}
	return err
}

func (s *Statter) Gauge(metric string, value int64, rate float32) error {
	err := s.statsdClient.Gauge(metric, value, rate)
	if err != nil {
		s.logError(metric, value, err)
	}
	return err
}

func (s *Statter) TimingDuration(metric string, value time.Duration, rate float32) error {
	err := s.statsdClient.TimingDuration(metric, value, rate)
	if err != nil {
		s.logError(metric, value, err)
	}
	return err
}

func (s *Statter) logError(metric string, value interface{}, err error) {
	s.logger.Error(failureMessage, err, logx.Data{
		Key:   "metric",
		Value: metric,
	}, logx.Data{
		Key:   "value",
		Value: value,
	})
}
