package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates ticket in new status", func(t *testing.T) {
		catID := uint(3)
		tk, err := NewTicket(1, &catID)

		require.NoError(t, err)
		assert.Equal(t, vo.StatusNew, tk.Status())
		assert.Equal(t, uint(1), tk.UserID())
		assert.Equal(t, catID, *tk.CategoryID())
		assert.Zero(t, tk.DailyID())
		assert.Nil(t, tk.ClosedAt())
		assert.NotEmpty(t, tk.TicketDate())
		assert.True(t, tk.IsActive())
	})

	t.Run("category is optional", func(t *testing.T) {
		tk, err := NewTicket(1, nil)
		require.NoError(t, err)
		assert.Nil(t, tk.CategoryID())
	})

	t.Run("requires user ID", func(t *testing.T) {
		_, err := NewTicket(0, nil)
		assert.Error(t, err)
	})

	t.Run("rejects zero category ID", func(t *testing.T) {
		zero := uint(0)
		_, err := NewTicket(1, &zero)
		assert.Error(t, err)
	})
}

func TestTicket_SetDailyID(t *testing.T) {
	tk, err := NewTicket(1, nil)
	require.NoError(t, err)

	require.NoError(t, tk.SetDailyID(7))
	assert.Equal(t, 7, tk.DailyID())

	t.Run("daily ID is immutable once set", func(t *testing.T) {
		assert.Error(t, tk.SetDailyID(8))
		assert.Equal(t, 7, tk.DailyID())
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		fresh, err := NewTicket(1, nil)
		require.NoError(t, err)
		assert.Error(t, fresh.SetDailyID(0))
		assert.Error(t, fresh.SetDailyID(-1))
	})
}

func TestTicket_MarkInProgress(t *testing.T) {
	tk, err := NewTicket(1, nil)
	require.NoError(t, err)

	require.NoError(t, tk.MarkInProgress())
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	t.Run("idempotent while in progress", func(t *testing.T) {
		assert.NoError(t, tk.MarkInProgress())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("fails on closed ticket", func(t *testing.T) {
		require.NoError(t, tk.Close())
		assert.Error(t, tk.MarkInProgress())
	})
}

func TestTicket_Close(t *testing.T) {
	t.Run("close from new", func(t *testing.T) {
		tk, err := NewTicket(1, nil)
		require.NoError(t, err)

		require.NoError(t, tk.Close())
		assert.Equal(t, vo.StatusClosed, tk.Status())
		require.NotNil(t, tk.ClosedAt())
		assert.False(t, tk.IsActive())
	})

	t.Run("close from in_progress", func(t *testing.T) {
		tk, err := NewTicket(1, nil)
		require.NoError(t, err)
		require.NoError(t, tk.MarkInProgress())

		require.NoError(t, tk.Close())
		assert.Equal(t, vo.StatusClosed, tk.Status())
		assert.NotNil(t, tk.ClosedAt())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		tk, err := NewTicket(1, nil)
		require.NoError(t, err)
		require.NoError(t, tk.Close())

		assert.Error(t, tk.Close())
	})
}

func TestTicket_AssignStaff(t *testing.T) {
	tk, err := NewTicket(1, nil)
	require.NoError(t, err)

	require.NoError(t, tk.AssignStaff(10))
	require.NotNil(t, tk.AssignedStaffID())
	assert.Equal(t, uint(10), *tk.AssignedStaffID())

	t.Run("first assignment wins", func(t *testing.T) {
		require.NoError(t, tk.AssignStaff(11))
		assert.Equal(t, uint(10), *tk.AssignedStaffID())
	})

	t.Run("rejects zero staff ID", func(t *testing.T) {
		assert.Error(t, tk.AssignStaff(0))
	})
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid closed ticket", func(t *testing.T) {
		closedAt := now
		tk, err := ReconstructTicket(5, 2, "2025-01-01", 1, nil, vo.StatusClosed, nil, now, &closedAt)
		require.NoError(t, err)
		assert.Equal(t, uint(5), tk.ID())
		assert.Equal(t, 2, tk.DailyID())
	})

	t.Run("closedAt must match status", func(t *testing.T) {
		closedAt := now
		_, err := ReconstructTicket(5, 2, "2025-01-01", 1, nil, vo.StatusNew, nil, now, &closedAt)
		assert.Error(t, err)

		_, err = ReconstructTicket(5, 2, "2025-01-01", 1, nil, vo.StatusClosed, nil, now, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := ReconstructTicket(5, 2, "2025-01-01", 1, nil, vo.TicketStatus("pending"), nil, now, nil)
		assert.Error(t, err)
	})
}
