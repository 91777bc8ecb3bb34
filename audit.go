package clubadmin

import (
	"context"
	"io"
	"time"

	"github.com/easyvoley/clubadmin/internal/audit"
)

// AuditEvent is the structured audit record the client emits for session
// and request lifecycle.
type AuditEvent = audit.Event

// AuditSink receives emitted audit events.
type AuditSink = audit.Sink

// NoOpSink drops audit events.
type NoOpSink = audit.NoOpSink

// ChannelSink writes audit events into a buffered channel.
type ChannelSink = audit.ChannelSink

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink = audit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] over w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// emitAudit builds and dispatches one lifecycle event. Safe with a nil
// dispatcher (audit disabled).
func (c *Client) emitAudit(ctx context.Context, eventType string, success bool, errMsg string, decorate func(*AuditEvent)) {
	if c.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		Success:   success,
		Error:     errMsg,
	}
	if id, ok := c.sessions.Identity(); ok {
		event.UserID = id.ID
		event.Role = id.Role
	}
	if decorate != nil {
		decorate(&event)
	}

	c.audit.Emit(ctx, event)
}
