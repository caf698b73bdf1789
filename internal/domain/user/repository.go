package user

import "context"

// Repository persists chat users. FindByExternalID returns nil when the
// user has not contacted the service before.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByExternalID(ctx context.Context, externalID int64) (*User, error)
}
