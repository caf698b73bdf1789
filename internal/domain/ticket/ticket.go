package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// Ticket is the primary work item of the triage service. It carries two
// identities: the process-unique surrogate id and the human-facing dailyID,
// unique only within the ticket's business date.
type Ticket struct {
	id              uint
	dailyID         int
	ticketDate      string
	userID          uint
	categoryID      *uint
	status          vo.TicketStatus
	assignedStaffID *uint
	createdAt       time.Time
	closedAt        *time.Time
}

func NewTicket(userID uint, categoryID *uint) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if categoryID != nil && *categoryID == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Ticket{
		userID:     userID,
		categoryID: categoryID,
		status:     vo.StatusNew,
		ticketDate: biztime.BusinessDate(now),
		createdAt:  now,
	}, nil
}

func ReconstructTicket(
	id uint,
	dailyID int,
	ticketDate string,
	userID uint,
	categoryID *uint,
	status vo.TicketStatus,
	assignedStaffID *uint,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if dailyID <= 0 {
		return nil, fmt.Errorf("daily ID must be positive")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if status.IsClosed() != (closedAt != nil) {
		return nil, fmt.Errorf("closedAt must be set exactly when status is closed")
	}

	return &Ticket{
		id:              id,
		dailyID:         dailyID,
		ticketDate:      ticketDate,
		userID:          userID,
		categoryID:      categoryID,
		status:          status,
		assignedStaffID: assignedStaffID,
		createdAt:       createdAt,
		closedAt:        closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) DailyID() int {
	return t.dailyID
}

func (t *Ticket) TicketDate() string {
	return t.ticketDate
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) CategoryID() *uint {
	return t.categoryID
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AssignedStaffID() *uint {
	return t.assignedStaffID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

// IsActive reports whether this ticket occupies its user's single
// active-ticket slot.
func (t *Ticket) IsActive() bool {
	return t.status.IsActive()
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetDailyID assigns the per-day sequence value. It may be set exactly once;
// daily IDs are never reused or mutated after assignment.
func (t *Ticket) SetDailyID(dailyID int) error {
	if t.dailyID != 0 {
		return fmt.Errorf("daily ID is already set")
	}
	if dailyID <= 0 {
		return fmt.Errorf("daily ID must be positive")
	}
	t.dailyID = dailyID
	return nil
}

// MarkInProgress transitions a new ticket to in_progress on the first staff
// touch. It is a no-op for a ticket already in progress.
func (t *Ticket) MarkInProgress() error {
	if t.status.IsInProgress() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, vo.StatusInProgress)
	}
	t.status = vo.StatusInProgress
	return nil
}

// Close transitions the ticket to closed and stamps closedAt. Closing an
// already closed ticket is an error; closed is terminal.
func (t *Ticket) Close() error {
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}
	t.status = vo.StatusClosed
	now := biztime.NowUTC()
	t.closedAt = &now
	return nil
}

// AssignStaff records the staff member handling the ticket. The first
// assignment wins; later replies by other staff do not reassign.
func (t *Ticket) AssignStaff(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	if t.assignedStaffID == nil {
		t.assignedStaffID = &staffID
	}
	return nil
}
