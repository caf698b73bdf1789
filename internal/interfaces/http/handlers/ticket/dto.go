package ticket

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
)

// IntakeMessageRequest is one inbound user message. The service decides
// whether it opens a new ticket or continues the sender's active one.
type IntakeMessageRequest struct {
	UserExternalID int64  `json:"user_external_id" binding:"required"`
	DisplayName    string `json:"display_name" binding:"max=255"`
	CategoryID     *uint  `json:"category_id"`
	Text           string `json:"text" binding:"required"`
}

func (r *IntakeMessageRequest) ToCreateCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserExternalID: r.UserExternalID,
		DisplayName:    r.DisplayName,
		CategoryID:     r.CategoryID,
		Text:           r.Text,
	}
}

type IntakeMessageResponse struct {
	TicketID           uint      `json:"ticket_id"`
	DailyID            int       `json:"daily_id"`
	Status             string    `json:"status"`
	Opened             bool      `json:"opened"`
	MessageID          uint      `json:"message_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	NotificationFailed bool      `json:"notification_failed,omitempty"`
}

type StaffReplyRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Text    string `json:"text"`
	Close   bool   `json:"close"`
}

func (r *StaffReplyRequest) ToCommand(ticketID uint) usecases.StaffReplyCommand {
	return usecases.StaffReplyCommand{
		TicketID: ticketID,
		StaffID:  r.StaffID,
		Text:     r.Text,
		Close:    r.Close,
	}
}

type StaffReplyResponse struct {
	TicketID           uint       `json:"ticket_id"`
	DailyID            int        `json:"daily_id"`
	Status             string     `json:"status"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	NotificationFailed bool       `json:"notification_failed,omitempty"`
}

type ActiveTicketResponse struct {
	TicketID   uint      `json:"ticket_id"`
	DailyID    int       `json:"daily_id"`
	Status     string    `json:"status"`
	CategoryID *uint     `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
