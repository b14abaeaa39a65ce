package v1

import (
	"errors"
	"net/http"
	"time"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("/my", handler.ListMine)
		interviews.GET("", handler.List)
		interviews.POST("", handler.Schedule)
		interviews.GET("/:id", handler.GetDetails)
		interviews.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type ScheduleInterviewRequest struct {
	Date          string         `json:"date" binding:"required"`
	CandidateID   string         `json:"candidate_id" binding:"required"`
	InterviewerID string         `json:"interviewer_id"`
	Position      string         `json:"position" binding:"required"`
	Status        string         `json:"status"`
	Settings      map[string]any `json:"settings"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func staffOnly(c *gin.Context) bool {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleHR && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only HR or admins can manage interviews"))
		return false
	}
	return true
}

// parseInterviewDate accepts RFC3339 or the datetime-local format the
// scheduling form posts.
func parseInterviewDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", raw)
}

// ListMine godoc
// @Summary      My interviews
// @Description  Resolve the interviews belonging to the current user
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /interviews/my [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListMine(c *gin.Context) {
	identity := domain.Identity{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
	}

	interviews, err := h.interviewUC.ListForUser(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			c.Error(apperror.ServiceUnavailable("Interview lookup temporarily unavailable, please retry", err))
			return
		}
		c.Error(err)
		return
	}

	// An empty list is a valid outcome, not an error
	response.Success(c, http.StatusOK, "Interviews resolved", interviews)
}

// List godoc
// @Summary      List all interviews
// @Description  Full interview list for HR management
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	interviews, err := h.interviewUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview list", interviews)
}

// Schedule godoc
// @Summary      Schedule an interview
// @Description  Create a new interview session for a chosen candidate
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      ScheduleInterviewRequest  true  "Interview JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	date, err := parseInterviewDate(req.Date)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid interview date"))
		return
	}

	input := domain.ScheduleInterviewInput{
		Date:        date,
		CandidateID: req.CandidateID,
		Position:    req.Position,
		Status:      req.Status,
		Settings:    req.Settings,
	}
	if req.InterviewerID != "" {
		input.InterviewerID = &req.InterviewerID
	}

	interview, err := h.interviewUC.Schedule(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", interview)
}

// GetDetails godoc
// @Summary      Interview details
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetDetails(c *gin.Context) {
	interview, err := h.interviewUC.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview details", interview)
}

// UpdateStatus godoc
// @Summary      Update interview status
// @Description  Transition an interview to Scheduled, Completed or Cancelled
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Interview ID"
// @Param        status  body      UpdateStatusRequest  true  "Status JSON"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /interviews/{id}/status [patch]
// @Security     BearerAuth
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview status updated", nil)
}
