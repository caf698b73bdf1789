package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/db"
)

func TestSequenceRepository_Next(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewSequenceRepository(gormDB)
	tm := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	next := func(date string) (int, error) {
		var value int
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			var innerErr error
			value, innerErr = repo.Next(txCtx, date)
			return innerErr
		})
		return value, err
	}

	t.Run("first value of a date is 1", func(t *testing.T) {
		value, err := next("2026-08-28")
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	})

	t.Run("values increment within a date", func(t *testing.T) {
		for want := 2; want <= 5; want++ {
			value, err := next("2026-08-28")
			require.NoError(t, err)
			assert.Equal(t, want, value)
		}
	})

	t.Run("each date has an independent sequence", func(t *testing.T) {
		value, err := next("2026-08-29")
		require.NoError(t, err)
		assert.Equal(t, 1, value)

		value, err = next("2026-08-28")
		require.NoError(t, err)
		assert.Equal(t, 6, value)
	})

	t.Run("rolled back transaction does not burn a value", func(t *testing.T) {
		errAbort := assert.AnError
		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			value, innerErr := repo.Next(txCtx, "2026-08-30")
			require.NoError(t, innerErr)
			assert.Equal(t, 1, value)
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		value, err := next("2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	})
}

func TestSequenceRepository_Next_Concurrent(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewSequenceRepository(gormDB)
	tm := db.NewTransactionManager(gormDB)

	const workers = 50
	const date = "2026-09-01"

	values := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = tm.RunInTransaction(context.Background(), func(txCtx context.Context) error {
				value, err := repo.Next(txCtx, date)
				if err != nil {
					return err
				}
				values[i] = value
				return nil
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	// Exactly the values 1..workers, no gaps, no duplicates.
	sort.Ints(values)
	for i, v := range values {
		assert.Equal(t, i+1, v)
	}
}
