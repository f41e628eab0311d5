package domain

import "context"

// SenderRepo delivers the best-effort leave notification to the teacher's
// phone. Failures are logged by the caller and never surfaced to the
// student applying for the leave.
type SenderRepo interface {
	SendLeaveNotice(ctx context.Context, leave *Leave) error
}
