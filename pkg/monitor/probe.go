// Package monitor provides a synthetic probe that exercises a decision
// round-trip against the store and reports latency and correctness
// metrics, in the same spirit as an external health monitor process.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/codahale/hdrhistogram"
	uuid "github.com/satori/go.uuid"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/logx"
	"code.cloudfoundry.org/access/pkg/metrics"
)

const (
	ProbeAppID       = access.AppID(99999)
	ProbeUserID      = access.UserID(0)
	ProbeAppOpPrefix = "access.probe"

	probeMode = access.AppOpModeErrored

	histogramMin     = 0
	histogramMax     = int64(time.Minute)
	histogramSigFigs = 3
)

//go:generate counterfeiter . Client

type Client interface {
	GetDecision(subject access.Subject, object access.Object) access.Decision
	SetDecision(ctx context.Context, subject access.Subject, object access.Object, decision access.Decision) error
}

type Probe struct {
	client    Client
	logger    logx.Logger
	statter   metrics.Statter
	histogram *hdrhistogram.Histogram
}

func NewProbe(logger logx.Logger, client Client, statter metrics.Statter) *Probe {
	return &Probe{
		client:    client,
		logger:    logger.WithName("probe"),
		statter:   statter,
		histogram: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Run performs one probe cycle against a run-unique app op: read the
// current decision, set a sentinel mode, read it back, and restore the
// original decision. A read that does not observe the sentinel reports
// the run as incorrect.
func (p *Probe) Run(ctx context.Context) error {
	p.logger.Debug(starting)
	defer p.logger.Debug(finished)

	uid := access.UID{UserID: ProbeUserID, AppID: ProbeAppID}
	op := access.AppOpName(fmt.Sprintf("%s.%s", ProbeAppOpPrefix, uuid.NewV4().String()))

	before := p.timedGet(uid, op)

	if err := p.timedSet(ctx, uid, op, access.Decision(probeMode)); err != nil {
		p.logger.Error(failedToSetDecision, err)
		p.reportRun(false, false)
		return err
	}

	observed := p.timedGet(uid, op)
	correct := observed == access.Decision(probeMode)
	if !correct {
		p.logger.Error(incorrectDecision, ErrIncorrectDecision,
			logx.Data{Key: "expected", Value: int32(probeMode)},
			logx.Data{Key: "observed", Value: int32(observed)},
		)
	}

	if err := p.timedSet(ctx, uid, op, before); err != nil {
		p.logger.Error(failedToRestoreDecision, err)
		p.reportRun(false, correct)
		return err
	}

	p.reportRun(true, correct)
	if !correct {
		return ErrIncorrectDecision
	}
	return nil
}

func (p *Probe) timedGet(uid access.UID, op access.AppOpName) access.Decision {
	started := time.Now()
	decision := p.client.GetDecision(uid, op)
	p.record(time.Since(started))
	return decision
}

func (p *Probe) timedSet(ctx context.Context, uid access.UID, op access.AppOpName, decision access.Decision) error {
	started := time.Now()
	err := p.client.SetDecision(ctx, uid, op, decision)
	p.record(time.Since(started))
	return err
}

func (p *Probe) record(d time.Duration) {
	if err := p.histogram.RecordValue(int64(d)); err != nil {
		p.logger.Error(failedToRecordHistogramValue, err)
	}
	p.statter.TimingDuration(metricDecisionLatency, d, alwaysSample)
}

func (p *Probe) reportRun(success, correct bool) {
	p.statter.Gauge(metricRunsSuccess, boolGauge(success), alwaysSample)
	p.statter.Gauge(metricRunsCorrect, boolGauge(correct), alwaysSample)

	p.statter.Gauge(metricLatencyP90, p.histogram.ValueAtQuantile(90), alwaysSample)
	p.statter.Gauge(metricLatencyP99, p.histogram.ValueAtQuantile(99), alwaysSample)
	p.statter.Gauge(metricLatencyMax, p.histogram.Max(), alwaysSample)
}

func boolGauge(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
