package models

import "errors"

var (
	// ErrNoData means the batch held no usable major pair. Fatal for the run.
	ErrNoData = errors.New("no forex pairs found in the provided data")
	// ErrParse covers malformed source rows and malformed corroboration responses.
	ErrParse = errors.New("invalid data format")
	// ErrCredentialMissing is returned before any corroboration attempt is made.
	ErrCredentialMissing = errors.New("corroboration api key is missing")
	// ErrUpstream wraps a remote failure that survived the retry policy.
	ErrUpstream = errors.New("upstream service failed")
	// ErrRunInProgress rejects a second analysis while one is pending.
	ErrRunInProgress = errors.New("analysis already in progress")
)
