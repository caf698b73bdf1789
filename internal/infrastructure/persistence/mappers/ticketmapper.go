package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(m *ticket.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		DailyID:         t.DailyID(),
		TicketDate:      t.TicketDate(),
		UserID:          t.UserID(),
		CategoryID:      t.CategoryID(),
		Status:          t.Status().String(),
		AssignedStaffID: t.AssignedStaffID(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity. Messages
// are loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status in storage: %w", err)
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt).UTC()
		closedAt = &closed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.DailyID,
		model.TicketDate,
		model.UserID,
		model.CategoryID,
		status,
		model.AssignedStaffID,
		time.UnixMilli(model.CreatedAt).UTC(),
		closedAt,
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderRole: msg.Role().String(),
		Text:       msg.Text(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	role, err := vo.NewSenderRole(model.SenderRole)
	if err != nil {
		return nil, fmt.Errorf("invalid sender role in storage: %w", err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		role,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
