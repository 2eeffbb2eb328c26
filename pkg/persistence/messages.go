package persistence

const (
	failedToFlush            = "failed-to-flush"
	failedToWriteSystemState = "failed-to-write-system-state"
	failedToWriteUserState   = "failed-to-write-user-state"
)
