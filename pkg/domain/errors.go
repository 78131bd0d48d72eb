package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAPIKeyMissing = errors.New("api key is not configured")
	ErrEmptyResponse = errors.New("model returned no candidates")
	ErrJobFailed     = errors.New("generation job failed")
	ErrJobIncomplete = errors.New("generation job produced no output in time")
)
