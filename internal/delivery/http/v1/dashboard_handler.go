package v1

import (
	"errors"
	"net/http"
	"strconv"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	protected.GET("/dashboard", handler.Load)
}

// Load godoc
// @Summary      Job seeker dashboard
// @Description  Recommended jobs plus the current user's resolved interviews
// @Tags         dashboard
// @Produce      json
// @Param        refresh  query     int  false  "Refresh token; bump to force a full reload"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Load(c *gin.Context) {
	identity := domain.Identity{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
	}

	refreshToken, _ := strconv.ParseInt(c.DefaultQuery("refresh", "0"), 10, 64)

	data, err := h.dashboardUC.LoadDashboard(c.Request.Context(), identity, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			c.Error(apperror.ServiceUnavailable("Dashboard temporarily unavailable, please retry", err))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard loaded", data)
}
