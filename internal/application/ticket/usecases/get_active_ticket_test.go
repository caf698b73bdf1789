package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func TestGetActiveTicketUseCase_Execute(t *testing.T) {
	t.Run("returns the active ticket", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID int64) (*user.User, error) {
				return newTestUser(9, 42, "Alice"), nil
			},
		}
		ticketRepo := &mockTicketRepository{
			FindActiveByUserIDFunc: func(ctx context.Context, userID uint) (*ticket.Ticket, error) {
				return newActiveTestTicket(33, 4, userID), nil
			},
		}

		uc := NewGetActiveTicketUseCase(ticketRepo, userRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetActiveTicketQuery{UserExternalID: 42})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(33), result.TicketID)
		assert.Equal(t, 4, result.DailyID)
		assert.Equal(t, "new", result.Status)
	})

	t.Run("nil result for unknown user", func(t *testing.T) {
		uc := NewGetActiveTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetActiveTicketQuery{UserExternalID: 42})

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("nil result when no ticket is active", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByExternalIDFunc: func(ctx context.Context, externalID int64) (*user.User, error) {
				return newTestUser(9, 42, "Alice"), nil
			},
		}

		uc := NewGetActiveTicketUseCase(&mockTicketRepository{}, userRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetActiveTicketQuery{UserExternalID: 42})

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("rejects missing external ID", func(t *testing.T) {
		uc := NewGetActiveTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetActiveTicketQuery{})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
