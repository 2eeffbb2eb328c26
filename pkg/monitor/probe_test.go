package monitor_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/access/pkg/access"
	"code.cloudfoundry.org/access/pkg/logx/lagerx"
	"code.cloudfoundry.org/access/pkg/metrics/testmetrics"
	"code.cloudfoundry.org/access/pkg/monitor"
	"code.cloudfoundry.org/access/pkg/monitor/monitorfakes"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Probe", func() {
	var (
		client  *monitorfakes.FakeClient
		statter *testmetrics.Statter

		subject *monitor.Probe

		ctx context.Context
	)

	BeforeEach(func() {
		client = new(monitorfakes.FakeClient)
		statter = testmetrics.NewStatter()

		logger := lagerx.NewLogger(lagertest.NewTestLogger("access-test"))
		subject = monitor.NewProbe(logger, client, statter)

		ctx = context.Background()
	})

	gaugeValues := func(metric string) []int64 {
		var values []int64
		for _, call := range statter.GaugeCalls() {
			if call.Metric == metric {
				values = append(values, call.Value)
			}
		}
		return values
	}

	Describe("#Run", func() {
		Context("when the sentinel decision reads back", func() {
			BeforeEach(func() {
				client.GetDecisionReturnsOnCall(0, access.Decision(access.AppOpModeAllowed))
				client.GetDecisionReturnsOnCall(1, access.Decision(access.AppOpModeErrored))
			})

			It("succeeds", func() {
				Expect(subject.Run(ctx)).To(Succeed())
			})

			It("sets the sentinel and then restores the original decision", func() {
				Expect(subject.Run(ctx)).To(Succeed())

				Expect(client.SetDecisionCallCount()).To(Equal(2))

				_, subj, obj, decision := client.SetDecisionArgsForCall(0)
				Expect(subj).To(Equal(access.UID{UserID: monitor.ProbeUserID, AppID: monitor.ProbeAppID}))
				Expect(string(obj.(access.AppOpName))).To(HavePrefix(monitor.ProbeAppOpPrefix + "."))
				Expect(decision).To(Equal(access.Decision(access.AppOpModeErrored)))

				_, _, restoredOp, restored := client.SetDecisionArgsForCall(1)
				Expect(restoredOp).To(Equal(obj))
				Expect(restored).To(Equal(access.Decision(access.AppOpModeAllowed)))
			})

			It("uses a fresh app op for every run", func() {
				Expect(subject.Run(ctx)).To(Succeed())
				client.GetDecisionReturnsOnCall(2, access.Decision(access.AppOpModeAllowed))
				client.GetDecisionReturnsOnCall(3, access.Decision(access.AppOpModeErrored))
				Expect(subject.Run(ctx)).To(Succeed())

				_, _, firstOp, _ := client.SetDecisionArgsForCall(0)
				_, _, secondOp, _ := client.SetDecisionArgsForCall(2)
				Expect(firstOp).NotTo(Equal(secondOp))
			})

			It("reports a successful, correct run", func() {
				Expect(subject.Run(ctx)).To(Succeed())

				Expect(gaugeValues("access.probe.runs.success")).To(Equal([]int64{1}))
				Expect(gaugeValues("access.probe.runs.correct")).To(Equal([]int64{1}))
			})

			It("records a latency sample per decision call", func() {
				Expect(subject.Run(ctx)).To(Succeed())

				var latencies int
				for _, call := range statter.TimingDurationCalls() {
					if call.Metric == "access.probe.decisions.latency" {
						latencies++
					}
				}
				Expect(latencies).To(Equal(4))
			})

			It("reports latency quantiles", func() {
				Expect(subject.Run(ctx)).To(Succeed())

				Expect(gaugeValues("access.probe.decisions.latency.p90")).To(HaveLen(1))
				Expect(gaugeValues("access.probe.decisions.latency.p99")).To(HaveLen(1))
				Expect(gaugeValues("access.probe.decisions.latency.max")).To(HaveLen(1))
			})
		})

		Context("when the read does not observe the sentinel", func() {
			BeforeEach(func() {
				client.GetDecisionReturns(access.Decision(access.AppOpModeAllowed))
			})

			It("fails and reports the run as incorrect", func() {
				Expect(subject.Run(ctx)).To(Equal(monitor.ErrIncorrectDecision))

				Expect(gaugeValues("access.probe.runs.success")).To(Equal([]int64{1}))
				Expect(gaugeValues("access.probe.runs.correct")).To(Equal([]int64{0}))
			})

			It("still restores the original decision", func() {
				Expect(subject.Run(ctx)).To(HaveOccurred())

				Expect(client.SetDecisionCallCount()).To(Equal(2))
				_, _, _, restored := client.SetDecisionArgsForCall(1)
				Expect(restored).To(Equal(access.Decision(access.AppOpModeAllowed)))
			})
		})

		Context("when setting the sentinel fails", func() {
			BeforeEach(func() {
				client.SetDecisionReturns(errors.New("store on fire"))
			})

			It("returns the error and reports an unsuccessful run", func() {
				Expect(subject.Run(ctx)).To(MatchError("store on fire"))

				Expect(client.SetDecisionCallCount()).To(Equal(1))
				Expect(gaugeValues("access.probe.runs.success")).To(Equal([]int64{0}))
			})
		})

		Context("when restoring the original decision fails", func() {
			BeforeEach(func() {
				client.GetDecisionReturns(access.Decision(access.AppOpModeErrored))
				client.SetDecisionReturnsOnCall(1, errors.New("store on fire"))
			})

			It("returns the error but still reports correctness", func() {
				Expect(subject.Run(ctx)).To(MatchError("store on fire"))

				Expect(gaugeValues("access.probe.runs.success")).To(Equal([]int64{0}))
				Expect(gaugeValues("access.probe.runs.correct")).To(Equal([]int64{1}))
			})
		})
	})
})
