package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestTicketRepository_Save(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	t.Run("save new ticket successfully", func(t *testing.T) {
		tk := createTestTicket(t, 1, 1)

		err := repo.Save(ctx, tk)
		require.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("save assigns distinct ids", func(t *testing.T) {
		tk1 := createTestTicket(t, 2, 2)
		tk2 := createTestTicket(t, 3, 3)

		require.NoError(t, repo.Save(ctx, tk1))
		require.NoError(t, repo.Save(ctx, tk2))
		assert.NotEqual(t, tk1.ID(), tk2.ID())
	})

	t.Run("duplicate daily id on same date should fail", func(t *testing.T) {
		tk1 := createTestTicket(t, 4, 99)
		tk2 := createTestTicket(t, 5, 99)

		require.NoError(t, repo.Save(ctx, tk1))
		err := repo.Save(ctx, tk2)
		assert.Error(t, err)
	})
}

func TestTicketRepository_FindByID(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	t.Run("round trips a saved ticket", func(t *testing.T) {
		categoryID := uint(7)
		tk, err := ticket.NewTicket(1, &categoryID)
		require.NoError(t, err)
		require.NoError(t, tk.SetDailyID(1))
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.DailyID(), found.DailyID())
		assert.Equal(t, tk.TicketDate(), found.TicketDate())
		assert.Equal(t, tk.UserID(), found.UserID())
		require.NotNil(t, found.CategoryID())
		assert.Equal(t, categoryID, *found.CategoryID())
		assert.Equal(t, vo.StatusNew, found.Status())
		assert.Nil(t, found.ClosedAt())
	})

	t.Run("returns nil for unknown id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTicketRepository_Update(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	t.Run("persists assignment and transition to in_progress", func(t *testing.T) {
		tk := createTestTicket(t, 1, 1)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.AssignStaff(42))
		require.NoError(t, tk.MarkInProgress())
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		require.NotNil(t, found.AssignedStaffID())
		assert.Equal(t, uint(42), *found.AssignedStaffID())
	})

	t.Run("persists close with closed_at", func(t *testing.T) {
		tk := createTestTicket(t, 2, 2)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.Close())
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusClosed, found.Status())
		require.NotNil(t, found.ClosedAt())
	})
}

func TestTicketRepository_FindActiveByUserID(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	t.Run("returns nil when user has no tickets", func(t *testing.T) {
		found, err := repo.FindActiveByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("finds new and in_progress tickets", func(t *testing.T) {
		tk := createTestTicket(t, 2, 1)
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindActiveByUserID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())

		require.NoError(t, found.MarkInProgress())
		require.NoError(t, repo.Update(ctx, found))

		found, err = repo.FindActiveByUserID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vo.StatusInProgress, found.Status())
	})

	t.Run("ignores closed tickets", func(t *testing.T) {
		tk := createTestTicket(t, 3, 2)
		require.NoError(t, repo.Save(ctx, tk))
		require.NoError(t, tk.Close())
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindActiveByUserID(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("does not return another user's ticket", func(t *testing.T) {
		tk := createTestTicket(t, 4, 3)
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindActiveByUserID(ctx, 5)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTicketRepository_Messages(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB)
	ctx := context.Background()

	tk := createTestTicket(t, 1, 1)
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("saves and orders messages", func(t *testing.T) {
		first, err := ticket.NewMessage(tk.ID(), vo.RoleUser, "my printer is on fire", ticket.DefaultMaxTextLength)
		require.NoError(t, err)
		require.NoError(t, repo.SaveMessage(ctx, first))
		assert.NotZero(t, first.ID())

		second, err := ticket.NewMessage(tk.ID(), vo.RoleStaff, "have you tried water", ticket.DefaultMaxTextLength)
		require.NoError(t, err)
		require.NoError(t, repo.SaveMessage(ctx, second))

		messages, err := repo.FindMessagesByTicketID(ctx, tk.ID())
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, vo.RoleUser, messages[0].Role())
		assert.Equal(t, "my printer is on fire", messages[0].Text())
		assert.Equal(t, vo.RoleStaff, messages[1].Role())
	})

	t.Run("empty result for ticket without messages", func(t *testing.T) {
		other := createTestTicket(t, 2, 2)
		require.NoError(t, repo.Save(ctx, other))

		messages, err := repo.FindMessagesByTicketID(ctx, other.ID())
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
