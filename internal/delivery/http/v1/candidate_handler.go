package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	protected.GET("/candidates", handler.ListDirectory)
	protected.GET("/candidates/options", handler.ListFormOptions)
	protected.GET("/interviewers", handler.ListInterviewers)
}

// ListDirectory godoc
// @Summary      Candidate directory
// @Description  All candidates merged with job seeker profiles, names normalized
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListDirectory(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	options, err := h.candidateUC.ListDirectory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate directory", options)
}

// ListFormOptions godoc
// @Summary      Selectable candidates
// @Description  Directory entries valid for the scheduling form (broken rows hidden)
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidates/options [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListFormOptions(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	options, err := h.candidateUC.ListFormOptions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Selectable candidates", options)
}

// ListInterviewers godoc
// @Summary      Available interviewers
// @Description  Approved HR and admin profiles
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /interviewers [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListInterviewers(c *gin.Context) {
	if !staffOnly(c) {
		return
	}

	interviewers, err := h.candidateUC.ListInterviewers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviewer list", interviewers)
}
