package handlers

import (
	"net/http"
	"time"

	"garagedesk/models"
	"garagedesk/services/report"
	"garagedesk/services/scheduling"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the hours and analytics aggregations.
type ReportHandler struct {
	Service *report.Service
}

func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{Service: svc}
}

// dateRange pulls and validates the from/to query params, defaulting both
// to today.
func dateRange(c *gin.Context) (string, string, bool) {
	today := scheduling.FormatDate(time.Now())
	from := c.DefaultQuery("from", today)
	to := c.DefaultQuery("to", today)
	if _, err := scheduling.ParseDate(from); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date", "details": err.Error()})
		return "", "", false
	}
	if _, err := scheduling.ParseDate(to); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date", "details": err.Error()})
		return "", "", false
	}
	return from, to, true
}

// GetTechnicianHours returns completed task time per technician for a range.
func (h *ReportHandler) GetTechnicianHours(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	hours, err := h.Service.TechnicianHours(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "hours": hours})
}

// GetAnalytics returns the dashboard summary. An optional technician filter
// accepts ?techId= or the legacy ?tech= name.
func (h *ReportHandler) GetAnalytics(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	filter := models.TechnicianRef{
		ID:   c.Query("techId"),
		Name: c.Query("tech"),
	}
	summary, err := h.Service.Analytics(c.Request.Context(), from, to, filter, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
