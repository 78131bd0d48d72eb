package domain

// JobStatus is the state of an asynchronous generation job as reported by
// the provider. The vocabulary is open-ended; anything not recognized as
// terminal is treated as still in progress.
type JobStatus string

const (
	JobStatusStarting   JobStatus = "starting"
	JobStatusProcessing JobStatus = "processing"
	JobStatusSucceeded  JobStatus = "succeeded"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCanceled   JobStatus = "canceled"
)

func (s JobStatus) Succeeded() bool {
	return s == JobStatusSucceeded
}

// Terminal reports whether no further status change is expected.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed || s == JobStatusCanceled
}
