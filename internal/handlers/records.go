package handlers

import (
	"log"

	"charting-dashboard-server/internal/middleware"
	"charting-dashboard-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecordsQuery selects the clinic whose visit records are listed.
type RecordsQuery struct {
	HospitalID string `form:"hospitalId" validate:"required"`
	Limit      int    `form:"limit" validate:"gte=0,lte=500"`
}

// ListRecords handles fetching a clinic's normalized visit records, newest first.
//
//	@Summary		Clinic visit records
//	@Tags			records
//	@Produce		json
//	@Param			hospitalId	query		string	true	"Clinic id"
//	@Param			limit		query		int		false	"Maximum number of records, 0 for all"
//	@Success		200			{object}	utils.ResponseData{data=[]models.VisitRecordView}
//	@Failure		400			{object}	utils.ResponseData
//	@Failure		403			{object}	utils.ResponseData
//	@Failure		500			{object}	utils.ResponseData
//	@Router			/api/records [get]
func (h *DashboardHandler) ListRecords(c *gin.Context) {
	var q RecordsQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}
	if !h.allowHospital(c, q.HospitalID) {
		return
	}

	ctx, cancel := h.queryContext(c)
	defer cancel()

	records, err := h.Stats.HospitalRecords(ctx, q.HospitalID, q.Limit)
	if err != nil {
		log.Printf("[%s] Record list error: %v", middleware.GetRequestID(c), err)
		utils.InternalServerError(c, "Failed to fetch records")
		return
	}

	utils.Success(c, "Records fetched successfully", records)
}
