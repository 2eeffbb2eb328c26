package monitor

const (
	starting = "starting"
	finished = "finished"

	failedToSetDecision          = "failed-to-set-decision"
	failedToRestoreDecision      = "failed-to-restore-decision"
	failedToRecordHistogramValue = "failed-to-record-histogram-value"
	incorrectDecision            = "incorrect-decision"

	metricRunsSuccess     = "access.probe.runs.success"
	metricRunsCorrect     = "access.probe.runs.correct"
	metricDecisionLatency = "access.probe.decisions.latency"
	metricLatencyP90      = "access.probe.decisions.latency.p90"
	metricLatencyP99      = "access.probe.decisions.latency.p99"
	metricLatencyMax      = "access.probe.decisions.latency.max"

	alwaysSample = 1
)
