package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// Closed is terminal: no transition leaves it. A user continues by opening
// a new ticket.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsActive reports whether a ticket in this status still occupies the
// user's single active-ticket slot.
func (ts TicketStatus) IsActive() bool {
	return ts == StatusNew || ts == StatusInProgress
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
