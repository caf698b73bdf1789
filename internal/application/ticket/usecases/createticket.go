package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserExternalID int64
	DisplayName    string
	CategoryID     *uint
	Text           string
}

type CreateTicketResult struct {
	TicketID  uint
	DailyID   int
	Status    string
	CreatedAt time.Time
}

// CreateTicketUseCase opens a new ticket: it upserts the chat user, enforces
// the one-active-ticket rule, reserves the per-day sequence value, and
// persists the ticket with its initiating message in a single transaction.
// The staff notification runs after commit and is reported separately.
type CreateTicketUseCase struct {
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	sequenceRepo  ticket.SequenceRepository
	txManager     TransactionManager
	gateway       NotificationGateway
	maxTextLength int
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	sequenceRepo ticket.SequenceRepository,
	txManager TransactionManager,
	gateway NotificationGateway,
	maxTextLength int,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		sequenceRepo:  sequenceRepo,
		txManager:     txManager,
		gateway:       gateway,
		maxTextLength: maxTextLength,
		logger:        log,
	}
}

// Execute returns the created ticket identity. When the ticket committed but
// the staff notification could not be delivered, the result is returned
// together with a notification error; callers must treat that combination as
// success with a delivery warning, never as a failed creation.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "external_id", cmd.UserExternalID)

	if cmd.UserExternalID == 0 {
		return nil, errors.NewValidationError("user external ID is required")
	}

	text, err := ticket.ValidateText(cmd.Text, uc.maxTextLength)
	if err != nil {
		uc.logger.Warnw("rejected ticket text", "external_id", cmd.UserExternalID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		createdTicket *ticket.Ticket
		ticketUser    *user.User
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.resolveUser(txCtx, cmd.UserExternalID, cmd.DisplayName)
		if err != nil {
			return err
		}
		ticketUser = u

		active, err := uc.ticketRepo.FindActiveByUserID(txCtx, u.ID())
		if err != nil {
			return err
		}
		if active != nil {
			return errors.NewActiveTicketExistsError(active.ID(), active.DailyID())
		}

		newTicket, err := ticket.NewTicket(u.ID(), cmd.CategoryID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		dailyID, err := uc.sequenceRepo.Next(txCtx, newTicket.TicketDate())
		if err != nil {
			return err
		}
		if err := newTicket.SetDailyID(dailyID); err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		msg, err := ticket.NewMessage(0, vo.RoleUser, text, uc.maxTextLength)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := msg.SetTicketID(newTicket.ID()); err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := uc.ticketRepo.SaveMessage(txCtx, msg); err != nil {
			return err
		}

		createdTicket = newTicket
		return nil
	})
	if err != nil {
		if errors.IsActiveTicketExists(err) || errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create ticket", "external_id", cmd.UserExternalID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket", err.Error())
	}

	uc.logger.Infow("ticket created",
		"ticket_id", createdTicket.ID(),
		"daily_id", createdTicket.DailyID(),
		"date", createdTicket.TicketDate())

	result := &CreateTicketResult{
		TicketID:  createdTicket.ID(),
		DailyID:   createdTicket.DailyID(),
		Status:    createdTicket.Status().String(),
		CreatedAt: createdTicket.CreatedAt(),
	}

	payload := NotificationPayload{
		Channel:         ChannelStaff,
		TicketID:        createdTicket.ID(),
		DailyID:         createdTicket.DailyID(),
		UserExternalID:  ticketUser.ExternalID(),
		UserDisplayName: ticketUser.DisplayName(),
		Text:            text,
		Timestamp:       biztime.NowUTC(),
	}
	if err := uc.gateway.Notify(ctx, payload); err != nil {
		// The ticket is committed; delivery failure is reported, not rolled back.
		uc.logger.Errorw("staff notification failed", "ticket_id", createdTicket.ID(), "error", err)
		return result, errors.NewNotificationError("failed to notify staff", err.Error())
	}

	return result, nil
}

// resolveUser finds the chat user by external identity, creating it on first
// contact and refreshing a changed display name otherwise.
func (uc *CreateTicketUseCase) resolveUser(ctx context.Context, externalID int64, displayName string) (*user.User, error) {
	existing, err := uc.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.RefreshDisplayName(displayName) {
			if err := uc.userRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	u, err := user.NewUser(externalID, displayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
