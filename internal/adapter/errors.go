package adapter

import "errors"

var (
	// ErrTransport covers timeouts, connection failures and 5xx responses.
	// Recoverable: the coordinator preserves the queue, records the error
	// and retries after the cooldown window.
	ErrTransport = errors.New("transport failure")

	// ErrBadRequest is returned when the server refuses the whole batch as
	// malformed (4xx). The queue is preserved but the failure is logged
	// loudly because a retry without a code change is unlikely to succeed.
	ErrBadRequest = errors.New("sync request rejected")
)
