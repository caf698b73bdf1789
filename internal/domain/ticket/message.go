package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// DefaultMaxTextLength bounds ticket and message bodies when no policy
// override is configured.
const DefaultMaxTextLength = 10000

// Message is one unit of ticket conversation, owned exclusively by its
// ticket. Ordering within a ticket is creation time, ties broken by the
// surrogate id, never by client-supplied time.
type Message struct {
	id        uint
	ticketID  uint
	role      vo.SenderRole
	text      string
	createdAt time.Time
}

// ValidateText trims text and enforces the non-empty and maximum-length
// rules. The limit counts characters, not bytes; maxLength <= 0 selects
// DefaultMaxTextLength. The returned string is the trimmed form that must be
// persisted.
func ValidateText(text string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxTextLength
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("text cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxLength {
		return "", fmt.Errorf("text exceeds maximum length of %d characters", maxLength)
	}
	return trimmed, nil
}

// NewMessage validates and trims text before constructing the message.
// ticketID may be zero only transiently, for the initiating message created
// in the same transaction as its ticket; SetTicketID binds it before save.
func NewMessage(ticketID uint, role vo.SenderRole, text string, maxLength int) (*Message, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid sender role: %s", role)
	}

	trimmed, err := ValidateText(text, maxLength)
	if err != nil {
		return nil, err
	}

	return &Message{
		ticketID:  ticketID,
		role:      role,
		text:      trimmed,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	role vo.SenderRole,
	text string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid sender role: %s", role)
	}

	return &Message{
		id:        id,
		ticketID:  ticketID,
		role:      role,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) Role() vo.SenderRole {
	return m.role
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SetTicketID binds the initiating message to its freshly inserted ticket.
func (m *Message) SetTicketID(ticketID uint) error {
	if m.ticketID != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.ticketID = ticketID
	return nil
}
