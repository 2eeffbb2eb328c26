package store

const (
	userAdded      = "user-added"
	userRemoved    = "user-removed"
	packageAdded   = "package-added"
	packageRemoved = "package-removed"

	failedToScheduleWrite = "failed-to-schedule-write"

	metricMutations        = "access.store.mutations"
	metricMutationsFailed  = "access.store.mutations.failed"
	metricMutationDuration = "access.store.mutation-duration"

	alwaysSample = 1
)
