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

type AppendUserMessageCommand struct {
	TicketID uint
	Text     string
}

type AppendUserMessageResult struct {
	TicketID  uint
	MessageID uint
	CreatedAt time.Time
}

// AppendUserMessageUseCase threads a follow-up user message onto a ticket
// that is not yet closed. Ticket status is left untouched.
type AppendUserMessageUseCase struct {
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	txManager     TransactionManager
	gateway       NotificationGateway
	maxTextLength int
	logger        logger.Interface
}

func NewAppendUserMessageUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	gateway NotificationGateway,
	maxTextLength int,
	log logger.Interface,
) *AppendUserMessageUseCase {
	return &AppendUserMessageUseCase{
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		gateway:       gateway,
		maxTextLength: maxTextLength,
		logger:        log,
	}
}

func (uc *AppendUserMessageUseCase) Execute(ctx context.Context, cmd AppendUserMessageCommand) (*AppendUserMessageResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	text, err := ticket.ValidateText(cmd.Text, uc.maxTextLength)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		savedMessage *ticket.Message
		parent       *ticket.Ticket
		sender       *user.User
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
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
		parent = t

		u, err := uc.userRepo.FindByID(txCtx, t.UserID())
		if err != nil {
			return err
		}
		sender = u

		msg, err := ticket.NewMessage(t.ID(), vo.RoleUser, text, uc.maxTextLength)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.SaveMessage(txCtx, msg); err != nil {
			return err
		}
		savedMessage = msg
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to append user message", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to append message", err.Error())
	}

	result := &AppendUserMessageResult{
		TicketID:  parent.ID(),
		MessageID: savedMessage.ID(),
		CreatedAt: savedMessage.CreatedAt(),
	}

	payload := NotificationPayload{
		Channel:   ChannelStaff,
		TicketID:  parent.ID(),
		DailyID:   parent.DailyID(),
		Text:      text,
		Timestamp: biztime.NowUTC(),
	}
	if sender != nil {
		payload.UserExternalID = sender.ExternalID()
		payload.UserDisplayName = sender.DisplayName()
	}
	if err := uc.gateway.Notify(ctx, payload); err != nil {
		uc.logger.Errorw("staff notification failed", "ticket_id", parent.ID(), "error", err)
		return result, errors.NewNotificationError("failed to notify staff", err.Error())
	}

	return result, nil
}
