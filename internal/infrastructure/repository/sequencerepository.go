package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// SequenceRepository issues per-business-date daily ticket numbers from the
// daily_ticket_counters table. Next must run inside the caller's transaction:
// the counter advance is only visible to others once the enclosing ticket
// creation commits, so an aborted creation cannot burn a number.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(gormDB *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: gormDB}
}

// Next returns the next daily ID for the given business date. The counter row
// is read with a row lock so concurrent callers on the same date serialize;
// when no row exists yet, the first caller inserts {date, 1} and a loser of
// that insert race falls back to the locked increment path.
func (r *SequenceRepository) Next(ctx context.Context, date string) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	value, err := r.increment(tx, date)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	// No counter row for this date yet. Try to be the one that creates it.
	model := &models.DailyTicketCounterModel{Date: date, LastIssuedValue: 1}
	createErr := tx.Create(model).Error
	if createErr == nil {
		return 1, nil
	}
	if !apperrors.IsDuplicateError(createErr) {
		return 0, fmt.Errorf("failed to create daily counter for %s: %w", date, createErr)
	}

	// Another transaction inserted the row between our read and insert;
	// take the locked increment path against the now-existing row.
	value, err = r.increment(tx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to advance daily counter for %s: %w", date, err)
	}
	return value, nil
}

func (r *SequenceRepository) increment(tx *gorm.DB, date string) (int, error) {
	var model models.DailyTicketCounterModel

	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ?", date).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to lock daily counter for %s: %w", date, err)
	}

	next := model.LastIssuedValue + 1
	result := tx.
		Model(&models.DailyTicketCounterModel{}).
		Where("id = ?", model.ID).
		Update("last_issued_value", next)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance daily counter for %s: %w", date, result.Error)
	}

	return next, nil
}
