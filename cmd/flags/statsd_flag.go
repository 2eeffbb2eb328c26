package flags

import (
	"fmt"
	"time"

	"github.com/cactus/go-statsd-client/statsd"

	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/metrics"
	"code.cloudfoundry.org/access/pkg/metrics/statsdx"
)

const (
	statsDFlushInterval = 100 * time.Millisecond
	statsDFlushBytes    = 512
)

type StatsDFlag struct {
	Hostname string `long:"statsd-hostname" description:"Hostname used to connect to StatsD server; metrics are discarded when unset"`
	Port     int    `long:"statsd-port" default:"8125" description:"Port used to connect to StatsD server"`
}

func (f StatsDFlag) Statter(logger logx.Logger) (metrics.Statter, error) {
	if f.Hostname == "" {
		return metrics.NoneStatter, nil
	}

	client, err := statsd.NewBufferedClient(fmt.Sprintf("%s:%d", f.Hostname, f.Port), "", statsDFlushInterval, statsDFlushBytes)
	if err != nil {
		return nil, err
	}

	return statsdx.NewStatter(logger, client), nil
}
