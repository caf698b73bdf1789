package ticket

import "context"

// Repository persists tickets and their messages. Implementations must
// respect an enclosing transaction carried in ctx so that creation commits
// the counter advance, ticket insert, and message insert atomically.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// FindActiveByUserID returns the user's single non-closed ticket, or
	// nil when the user has none.
	FindActiveByUserID(ctx context.Context, userID uint) (*Ticket, error)
	SaveMessage(ctx context.Context, m *Message) error
	FindMessagesByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
}

// SequenceRepository hands out per-business-date daily IDs. Next must run
// inside the caller's transaction and must serialize concurrent callers on
// the same date so values are issued exactly once with no gaps.
type SequenceRepository interface {
	Next(ctx context.Context, date string) (int, error)
}
