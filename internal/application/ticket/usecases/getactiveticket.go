package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetActiveTicketQuery struct {
	UserExternalID int64
}

type ActiveTicketResult struct {
	TicketID   uint
	DailyID    int
	Status     string
	CategoryID *uint
	CreatedAt  time.Time
}

// GetActiveTicketUseCase is the read-only lookup callers use to decide
// whether an incoming message opens a new ticket or continues the active
// one. The routing decision itself stays with the caller.
type GetActiveTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetActiveTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *GetActiveTicketUseCase {
	return &GetActiveTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     log,
	}
}

// Execute returns nil (with nil error) when the user has no active ticket.
func (uc *GetActiveTicketUseCase) Execute(ctx context.Context, query GetActiveTicketQuery) (*ActiveTicketResult, error) {
	if query.UserExternalID == 0 {
		return nil, errors.NewValidationError("user external ID is required")
	}

	u, err := uc.userRepo.FindByExternalID(ctx, query.UserExternalID)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "external_id", query.UserExternalID, "error", err)
		return nil, errors.NewInternalError("failed to look up user", err.Error())
	}
	if u == nil {
		return nil, nil
	}

	active, err := uc.ticketRepo.FindActiveByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to look up active ticket", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to look up active ticket", err.Error())
	}
	if active == nil {
		return nil, nil
	}

	return &ActiveTicketResult{
		TicketID:   active.ID(),
		DailyID:    active.DailyID(),
		Status:     active.Status().String(),
		CategoryID: active.CategoryID(),
		CreatedAt:  active.CreatedAt(),
	}, nil
}
