package errors

import (
	"fmt"
	"net/http"
)

// ActiveTicketExistsError is returned when a user attempts to open a second
// ticket while one is still active. It carries the existing ticket identity
// so callers can surface it to the user.
type ActiveTicketExistsError struct {
	AppError
	TicketID uint `json:"ticket_id"`
	DailyID  int  `json:"daily_id"`
}

// NewActiveTicketExistsError creates a conflict error referencing the
// user's currently active ticket.
func NewActiveTicketExistsError(ticketID uint, dailyID int) *ActiveTicketExistsError {
	return &ActiveTicketExistsError{
		AppError: AppError{
			Type:    ErrorTypeConflict,
			Message: "an active ticket already exists for this user",
			Code:    http.StatusConflict,
			Details: fmt.Sprintf("ticket #%d (daily id %d) is still open", ticketID, dailyID),
		},
		TicketID: ticketID,
		DailyID:  dailyID,
	}
}

// NewTicketNotFoundError creates a not found error for an unknown ticket.
func NewTicketNotFoundError(ticketID uint) *AppError {
	return NewNotFoundError("ticket not found", fmt.Sprintf("ticket id %d", ticketID))
}

// NewTicketClosedError creates a conflict error for an operation attempted
// against a closed ticket.
func NewTicketClosedError(ticketID uint) *AppError {
	return NewConflictError("ticket is closed", fmt.Sprintf("ticket id %d", ticketID))
}

// Unwrap exposes the embedded AppError so errors.As based helpers
// (IsConflictError, GetAppError) keep working.
func (e *ActiveTicketExistsError) Unwrap() error {
	return &e.AppError
}

// IsActiveTicketExists checks whether err is an ActiveTicketExistsError.
func IsActiveTicketExists(err error) bool {
	_, ok := err.(*ActiveTicketExistsError)
	return ok
}

// GetActiveTicketExists extracts an ActiveTicketExistsError if present.
func GetActiveTicketExists(err error) *ActiveTicketExistsError {
	if e, ok := err.(*ActiveTicketExistsError); ok {
		return e
	}
	return nil
}
