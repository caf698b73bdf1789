package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// IntakeHandler receives user messages. One endpoint takes every inbound
// message and routes it: a sender without an active ticket opens a new one,
// a sender with an active ticket appends to it.
type IntakeHandler struct {
	createTicketUC    usecases.CreateTicketExecutor
	appendMessageUC   usecases.AppendUserMessageExecutor
	getActiveTicketUC usecases.GetActiveTicketExecutor
	logger            logger.Interface
}

func NewIntakeHandler(
	createTicketUC usecases.CreateTicketExecutor,
	appendMessageUC usecases.AppendUserMessageExecutor,
	getActiveTicketUC usecases.GetActiveTicketExecutor,
) *IntakeHandler {
	return &IntakeHandler{
		createTicketUC:    createTicketUC,
		appendMessageUC:   appendMessageUC,
		getActiveTicketUC: getActiveTicketUC,
		logger:            logger.NewLogger(),
	}
}

// ReceiveMessage handles POST /intake/messages
func (h *IntakeHandler) ReceiveMessage(c *gin.Context) {
	var req IntakeMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid intake request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	active, err := h.getActiveTicketUC.Execute(c.Request.Context(), usecases.GetActiveTicketQuery{
		UserExternalID: req.UserExternalID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if active == nil {
		h.openTicket(c, req)
		return
	}

	h.appendMessage(c, active, req)
}

func (h *IntakeHandler) openTicket(c *gin.Context, req IntakeMessageRequest) {
	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil && !errors.IsNotificationError(err) {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := IntakeMessageResponse{
		TicketID:           result.TicketID,
		DailyID:            result.DailyID,
		Status:             result.Status,
		Opened:             true,
		CreatedAt:          result.CreatedAt,
		NotificationFailed: err != nil,
	}

	utils.CreatedResponse(c, resp, "Ticket opened")
}

func (h *IntakeHandler) appendMessage(c *gin.Context, active *usecases.ActiveTicketResult, req IntakeMessageRequest) {
	result, err := h.appendMessageUC.Execute(c.Request.Context(), usecases.AppendUserMessageCommand{
		TicketID: active.TicketID,
		Text:     req.Text,
	})
	if err != nil && !errors.IsNotificationError(err) {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := IntakeMessageResponse{
		TicketID:           active.TicketID,
		DailyID:            active.DailyID,
		Status:             active.Status,
		Opened:             false,
		MessageID:          result.MessageID,
		CreatedAt:          result.CreatedAt,
		NotificationFailed: err != nil,
	}

	utils.SuccessResponse(c, http.StatusOK, "Message appended", resp)
}

// GetActiveTicket handles GET /intake/users/:external_id/active-ticket
func (h *IntakeHandler) GetActiveTicket(c *gin.Context) {
	externalID, err := parseExternalID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getActiveTicketUC.Execute(c.Request.Context(), usecases.GetActiveTicketQuery{
		UserExternalID: externalID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("no active ticket"))
		return
	}

	resp := ActiveTicketResponse{
		TicketID:   result.TicketID,
		DailyID:    result.DailyID,
		Status:     result.Status,
		CategoryID: result.CategoryID,
		CreatedAt:  result.CreatedAt,
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
