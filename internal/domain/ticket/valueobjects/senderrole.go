package valueobjects

import "fmt"

type SenderRole string

const (
	RoleUser  SenderRole = "user"
	RoleStaff SenderRole = "staff"
)

func (r SenderRole) String() string {
	return string(r)
}

func (r SenderRole) IsValid() bool {
	return r == RoleUser || r == RoleStaff
}

func NewSenderRole(s string) (SenderRole, error) {
	r := SenderRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid sender role: %s", s)
	}
	return r, nil
}
