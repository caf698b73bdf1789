package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gormDB *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Updates skips zero values, so status transitions and closed_at are
	// written with an explicit column map.
	columns := map[string]interface{}{
		"status":            model.Status,
		"category_id":       model.CategoryID,
		"assigned_staff_id": model.AssignedStaffID,
		"closed_at":         model.ClosedAt,
	}

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(columns)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindActiveByUserID(ctx context.Context, userID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND status <> ?", userID, vo.StatusClosed.String()).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) SaveMessage(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *TicketRepository) FindMessagesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var modelList []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find ticket messages: %w", err)
	}

	messages := make([]*ticket.Message, 0, len(modelList))
	for i := range modelList {
		m, err := r.mapper.MessageToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}
