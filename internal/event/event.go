// Package event carries audit events from request handlers to the
// background user-log recorder. Publishing never blocks and delivery is
// best effort: a full subscriber buffer drops the event rather than
// delaying the request that produced it.
package event

import "go-movie-watchlist/internal/model"

// AuditEvent describes a completed mutation to be recorded in the audit
// trail. It is published only after the HTTP response has been written.
type AuditEvent struct {
	UserID      int64
	Action      model.UserLogAction
	Description string
	Details     string
}

type Bus interface {
	Publish(e AuditEvent)
	Subscribe() (<-chan AuditEvent, func())
}
