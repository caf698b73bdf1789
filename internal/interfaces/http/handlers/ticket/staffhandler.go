package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	categoryusecases "helpdesk/internal/application/category/usecases"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// StaffHandler serves the staff side of the triage flow: replying to and
// closing tickets.
type StaffHandler struct {
	staffReplyUC usecases.StaffReplyExecutor
	logger       logger.Interface
}

func NewStaffHandler(staffReplyUC usecases.StaffReplyExecutor) *StaffHandler {
	return &StaffHandler{
		staffReplyUC: staffReplyUC,
		logger:       logger.NewLogger(),
	}
}

// Reply handles POST /tickets/:id/reply
func (h *StaffHandler) Reply(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StaffReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid staff reply body", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.staffReplyUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil && !errors.IsNotificationError(err) {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := StaffReplyResponse{
		TicketID:           result.TicketID,
		DailyID:            result.DailyID,
		Status:             result.Status,
		ClosedAt:           result.ClosedAt,
		NotificationFailed: err != nil,
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply recorded", resp)
}

// CategoryHandler serves the category reference data.
type CategoryHandler struct {
	listCategoriesUC categoryusecases.ListCategoriesExecutor
}

func NewCategoryHandler(listCategoriesUC categoryusecases.ListCategoriesExecutor) *CategoryHandler {
	return &CategoryHandler{listCategoriesUC: listCategoriesUC}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	results, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, CategoryResponse{ID: r.ID, Name: r.Name})
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

func parseExternalID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("external_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid user external ID")
	}
	return id, nil
}
