package user

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"helpdesk/internal/shared/biztime"
)

const maxDisplayNameLength = 255

// User is the external chat identity a ticket belongs to. Users are created
// on first contact and never deleted; the external ID is immutable.
type User struct {
	id          uint
	externalID  int64
	displayName string
	createdAt   time.Time
}

func NewUser(externalID int64, displayName string) (*User, error) {
	if externalID == 0 {
		return nil, fmt.Errorf("external ID is required")
	}

	return &User{
		externalID:  externalID,
		displayName: normalizeDisplayName(displayName),
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructUser(id uint, externalID int64, displayName string, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if externalID == 0 {
		return nil, fmt.Errorf("external ID is required")
	}

	return &User{
		id:          id,
		externalID:  externalID,
		displayName: displayName,
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) ExternalID() int64 {
	return u.externalID
}

// DisplayName is untrusted input; render it through the notification
// gateway's escaping, never as markup.
func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// RefreshDisplayName picks up a changed chat profile name on contact.
func (u *User) RefreshDisplayName(displayName string) bool {
	displayName = normalizeDisplayName(displayName)
	if displayName == "" || displayName == u.displayName {
		return false
	}
	u.displayName = displayName
	return true
}

// normalizeDisplayName trims the name and caps it at maxDisplayNameLength
// characters, cutting at a rune boundary so the stored value stays valid
// UTF-8.
func normalizeDisplayName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		name = string([]rune(name)[:maxDisplayNameLength])
	}
	return name
}
