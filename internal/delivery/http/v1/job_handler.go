package v1

import (
	"net/http"
	"strconv"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobRepo domain.JobRepository
}

func NewJobHandler(protected *gin.RouterGroup, jobRepo domain.JobRepository) {
	handler := &JobHandler{jobRepo: jobRepo}

	protected.GET("/jobs", handler.List)
}

// List godoc
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of jobs"
// @Success      200    {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	jobs, err := h.jobRepo.Fetch(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}
