package usecases

import (
	"context"
	"time"
)

// TransactionManager scopes a function to one database transaction. The
// ctx passed to fn carries the transaction; repositories pick it up so the
// whole unit of work commits or rolls back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationChannel selects the audience of a notification payload.
type NotificationChannel string

const (
	ChannelStaff NotificationChannel = "staff"
	ChannelUser  NotificationChannel = "user"
)

// NotificationPayload is the outbound contract to the notification gateway.
// Text and UserDisplayName are raw untrusted input; the gateway applies its
// transport escaping before rendering.
type NotificationPayload struct {
	Channel         NotificationChannel
	TicketID        uint
	DailyID         int
	UserExternalID  int64
	UserDisplayName string
	Text            string
	Closing         bool
	Timestamp       time.Time
}

// NotificationGateway delivers alerts to staff and users. Delivery runs
// after the surrounding transaction has committed; failures surface as a
// notification condition and never affect stored state.
type NotificationGateway interface {
	Notify(ctx context.Context, payload NotificationPayload) error
}

// Executor interfaces consumed by the HTTP layer.

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AppendUserMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendUserMessageCommand) (*AppendUserMessageResult, error)
}

type StaffReplyExecutor interface {
	Execute(ctx context.Context, cmd StaffReplyCommand) (*StaffReplyResult, error)
}

type GetActiveTicketExecutor interface {
	Execute(ctx context.Context, query GetActiveTicketQuery) (*ActiveTicketResult, error)
}
