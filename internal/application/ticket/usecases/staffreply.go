package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type StaffReplyCommand struct {
	TicketID uint
	StaffID  uint
	Text     string
	Close    bool
}

type StaffReplyResult struct {
	TicketID uint
	DailyID  int
	Status   string
	ClosedAt *time.Time
}

// StaffReplyUseCase records a staff reply and drives the ticket state
// machine: the first reply moves a new ticket to in_progress, and close=true
// closes it from any non-closed status. Closing without a comment is allowed
// as an explicit policy: an empty reply text is rejected unless close is set.
type StaffReplyUseCase struct {
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	txManager     TransactionManager
	gateway       NotificationGateway
	maxTextLength int
	logger        logger.Interface
}

func NewStaffReplyUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	gateway NotificationGateway,
	maxTextLength int,
	log logger.Interface,
) *StaffReplyUseCase {
	return &StaffReplyUseCase{
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		gateway:       gateway,
		maxTextLength: maxTextLength,
		logger:        log,
	}
}

func (uc *StaffReplyUseCase) Execute(ctx context.Context, cmd StaffReplyCommand) (*StaffReplyResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	// An empty reply is only meaningful as "close without comment".
	text := strings.TrimSpace(cmd.Text)
	if text == "" && !cmd.Close {
		return nil, errors.NewValidationError("reply text cannot be empty")
	}
	if text != "" {
		validated, err := ticket.ValidateText(text, uc.maxTextLength)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		text = validated
	}

	var (
		replied   *ticket.Ticket
		recipient *user.User
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewTicketNotFoundError(cmd.TicketID)
		}
		if t.Status().IsClosed() {
			return errors.NewTicketClosedError(t.ID())
		}

		// The closing reply is recorded before the ticket transitions.
		if text != "" {
			msg, err := ticket.NewMessage(t.ID(), vo.RoleStaff, text, uc.maxTextLength)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.ticketRepo.SaveMessage(txCtx, msg); err != nil {
				return err
			}
		}

		if err := t.AssignStaff(cmd.StaffID); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if t.Status().IsNew() {
			if err := t.MarkInProgress(); err != nil {
				return errors.NewInternalError(err.Error())
			}
		}
		if cmd.Close {
			if err := t.Close(); err != nil {
				return errors.NewConflictError(err.Error())
			}
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		replied = t

		u, err := uc.userRepo.FindByID(txCtx, t.UserID())
		if err != nil {
			return err
		}
		recipient = u
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to record staff reply", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to record staff reply", err.Error())
	}

	uc.logger.Infow("staff reply recorded",
		"ticket_id", replied.ID(),
		"staff_id", cmd.StaffID,
		"status", replied.Status().String(),
		"closed", cmd.Close)

	result := &StaffReplyResult{
		TicketID: replied.ID(),
		DailyID:  replied.DailyID(),
		Status:   replied.Status().String(),
		ClosedAt: replied.ClosedAt(),
	}

	payload := NotificationPayload{
		Channel:   ChannelUser,
		TicketID:  replied.ID(),
		DailyID:   replied.DailyID(),
		Text:      text,
		Closing:   cmd.Close,
		Timestamp: biztime.NowUTC(),
	}
	if recipient != nil {
		payload.UserExternalID = recipient.ExternalID()
		payload.UserDisplayName = recipient.DisplayName()
	}
	if err := uc.gateway.Notify(ctx, payload); err != nil {
		uc.logger.Errorw("user notification failed", "ticket_id", replied.ID(), "error", err)
		return result, errors.NewNotificationError("failed to notify user", err.Error())
	}

	return result, nil
}
