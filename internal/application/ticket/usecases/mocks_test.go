package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc               func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	FindActiveByUserIDFunc     func(ctx context.Context, userID uint) (*ticket.Ticket, error)
	SaveMessageFunc            func(ctx context.Context, m *ticket.Message) error
	FindMessagesByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindActiveByUserID(ctx context.Context, userID uint) (*ticket.Ticket, error) {
	if m.FindActiveByUserIDFunc != nil {
		return m.FindActiveByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveMessage(ctx context.Context, msg *ticket.Message) error {
	if m.SaveMessageFunc != nil {
		return m.SaveMessageFunc(ctx, msg)
	}
	return nil
}

func (m *mockTicketRepository) FindMessagesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.FindMessagesByTicketIDFunc != nil {
		return m.FindMessagesByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByExternalIDFunc func(ctx context.Context, externalID int64) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByExternalID(ctx context.Context, externalID int64) (*user.User, error) {
	if m.FindByExternalIDFunc != nil {
		return m.FindByExternalIDFunc(ctx, externalID)
	}
	return nil, nil
}

type mockSequenceRepository struct {
	NextFunc func(ctx context.Context, date string) (int, error)
}

func (m *mockSequenceRepository) Next(ctx context.Context, date string) (int, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, date)
	}
	return 1, nil
}

// mockTxManager runs the unit of work directly; an error from fn stands in
// for a rolled back transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotificationGateway struct {
	NotifyFunc func(ctx context.Context, payload NotificationPayload) error
	payloads   []NotificationPayload
}

func (m *mockNotificationGateway) Notify(ctx context.Context, payload NotificationPayload) error {
	m.payloads = append(m.payloads, payload)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, payload)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}

func newTestUser(id uint, externalID int64, name string) *user.User {
	u, err := user.ReconstructUser(id, externalID, name, timeNow())
	if err != nil {
		panic(err)
	}
	return u
}

func newActiveTestTicket(id uint, dailyID int, userID uint) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(id, dailyID, "2025-01-01", userID, nil, "new", nil, timeNow(), nil)
	if err != nil {
		panic(err)
	}
	return t
}
