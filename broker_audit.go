package goSuite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	auditEventTokenRefreshSuccess = "token_refresh_success"
	auditEventTokenRefreshFailure = "token_refresh_failure"
	auditEventTicketFetchSuccess  = "ticket_fetch_success"
	auditEventTicketFetchFailure  = "ticket_fetch_failure"
	auditEventRemoteCallFailure   = "remote_call_failure"
)

// AuditErrorCode defines a public type used by goSuite APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrRemote            AuditErrorCode = "remote_error"
	auditErrTicketUnavailable AuditErrorCode = "ticket_unavailable"
	auditErrTokenUnavailable  AuditErrorCode = "token_unavailable"
	auditErrTransport         AuditErrorCode = "transport_error"
)

func (b *Broker) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	operation string,
	corpID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if b == nil || b.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Operation: operation,
		CorpID:    corpID,
		RequestID: uuid.NewString(),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	b.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	var remoteErr *RemoteError
	switch {
	case errors.As(err, &remoteErr):
		return auditErrRemote
	case errors.Is(err, ErrTicketUnavailable):
		return auditErrTicketUnavailable
	case errors.Is(err, ErrTokenUnavailable):
		return auditErrTokenUnavailable
	default:
		return auditErrTransport
	}
}
