package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examUC domain.ExamUsecase
}

func NewExamHandler(protected *gin.RouterGroup, examUC domain.ExamUsecase) {
	handler := &ExamHandler{examUC: examUC}

	protected.GET("/exams", handler.List)
}

// List godoc
// @Summary      List preparation exams
// @Tags         exams
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /exams [get]
// @Security     BearerAuth
func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.examUC.ListExams(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Exam list", exams)
}
