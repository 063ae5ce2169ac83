package handlers

import (
	"errors"
	"net/http"

	"garagedesk/models"
	"garagedesk/services/appointment"
	"garagedesk/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the scheduling workflow over HTTP.
type AppointmentHandler struct {
	Service appointment.Service
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.Service, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// respondSchedulingError maps scheduling outcomes onto HTTP statuses:
// conflicts are a 409 the user can act on, bad requests a 400, and the
// internal guards (iteration bound, broken calendar) a 500.
func (h *AppointmentHandler) respondSchedulingError(c *gin.Context, err error) {
	var conflict *appointment.ConflictError
	switch {
	case errors.As(err, &conflict):
		payload := gin.H{"error": "time slot is already booked for this technician"}
		if conflict.With != nil {
			payload["conflictsWith"] = gin.H{
				"id":        conflict.With.ID,
				"date":      conflict.With.Date,
				"startSlot": conflict.With.StartSlot,
			}
		}
		c.JSON(http.StatusConflict, payload)
	case errors.Is(err, scheduling.ErrInvalidDuration),
		errors.Is(err, scheduling.ErrInvalidStartSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrIterationBound),
		errors.Is(err, scheduling.ErrNoWorkingDay):
		h.Logger.Error("Scheduling engine internal failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal scheduling failure"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateAppointment books a new job, splitting it across days when needed.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var candidate models.Appointment
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	segments, err := h.Service.Save(c.Request.Context(), candidate)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"segments": segments})
}

// UpdateAppointment re-plans an existing job.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")
	var candidate models.Appointment
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	segments, err := h.Service.Update(c.Request.Context(), id, candidate)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// DeleteAppointment removes a job and all of its rollover segments.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetAppointment returns a single appointment record.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// GetDay returns the calendar grid for one date with rendered spans.
func (h *AppointmentHandler) GetDay(c *gin.Context) {
	view, err := h.Service.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetHistory returns all appointments recorded for a vehicle registration.
func (h *AppointmentHandler) GetHistory(c *gin.Context) {
	reg := c.Param("reg")
	appts, err := h.Service.History(c.Request.Context(), reg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicleReg": reg, "appointments": appts})
}
