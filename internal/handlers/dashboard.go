package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"charting-dashboard-server/internal/middleware"
	"charting-dashboard-server/internal/models"
	"charting-dashboard-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// StatsService is the statistics backend used by the dashboard handlers.
type StatsService interface {
	HospitalStats(ctx context.Context, hospitalID string) (models.DashboardStats, error)
	UserStats(ctx context.Context, userID string) (models.DashboardStats, error)
	HospitalRecords(ctx context.Context, hospitalID string, limit int) ([]models.VisitRecordView, error)
}

// DashboardHandler handles dashboard statistics requests.
type DashboardHandler struct {
	Stats        StatsService
	QueryTimeout time.Duration
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats StatsService, queryTimeout time.Duration) *DashboardHandler {
	return &DashboardHandler{Stats: stats, QueryTimeout: queryTimeout}
}

// StatsQuery selects whose visits are summarized. hospitalId wins when both are given.
type StatsQuery struct {
	UserID     string `form:"userId" validate:"required_without=HospitalID"`
	HospitalID string `form:"hospitalId"`
}

// GetStats handles fetching the dashboard summary.
//
//	@Summary		Dashboard statistics
//	@Description	Summarizes the visits of a clinic, or the legacy recording sessions of a user.
//	@Tags			dashboard
//	@Produce		json
//	@Param			hospitalId	query		string	false	"Clinic id"
//	@Param			userId		query		string	false	"User id, used when hospitalId is absent"
//	@Success		200			{object}	models.DashboardStats
//	@Failure		400			{object}	utils.ResponseData
//	@Failure		403			{object}	utils.ResponseData
//	@Failure		500			{object}	utils.ResponseData
//	@Router			/api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var q StatsQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}
	if !h.allowHospital(c, q.HospitalID) {
		return
	}
	if q.HospitalID == "" && !h.allowUser(c, q.UserID) {
		return
	}

	ctx, cancel := h.queryContext(c)
	defer cancel()

	var (
		stats models.DashboardStats
		err   error
	)
	if q.HospitalID != "" {
		stats, err = h.Stats.HospitalStats(ctx, q.HospitalID)
	} else {
		stats, err = h.Stats.UserStats(ctx, q.UserID)
	}
	if err != nil {
		log.Printf("[%s] Dashboard stats error: %v", middleware.GetRequestID(c), err)
		utils.InternalServerError(c, "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// allowHospital rejects requests for a clinic other than the one the caller's
// token is scoped to. Unauthenticated and unscoped callers pass.
func (h *DashboardHandler) allowHospital(c *gin.Context, hospitalID string) bool {
	scope, scoped := middleware.GetHospitalIDFromContext(c)
	if !scoped || hospitalID == "" || hospitalID == scope {
		return true
	}
	utils.Forbidden(c, "You do not have permission to access this clinic.")
	return false
}

// allowUser lets an authenticated caller read only their own legacy sessions.
func (h *DashboardHandler) allowUser(c *gin.Context, userID string) bool {
	self, authenticated := middleware.GetUserIDFromContext(c)
	if !authenticated || userID == self {
		return true
	}
	utils.Forbidden(c, "You do not have permission to access this user's sessions.")
	return false
}

func (h *DashboardHandler) queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.QueryTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.QueryTimeout)
}
