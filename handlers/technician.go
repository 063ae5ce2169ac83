package handlers

import (
	"net/http"

	"garagedesk/models"
	"garagedesk/services/technician"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler exposes the technician directory.
type TechnicianHandler struct {
	Directory *technician.Directory
}

func NewTechnicianHandler(dir *technician.Directory) *TechnicianHandler {
	return &TechnicianHandler{Directory: dir}
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.Directory.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, techs)
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var tech models.Technician
	if err := c.ShouldBindJSON(&tech); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if tech.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "technician name is required"})
		return
	}
	if err := h.Directory.Create(c.Request.Context(), &tech); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tech)
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	id := c.Param("id")
	var tech models.Technician
	if err := c.ShouldBindJSON(&tech); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	tech.ID = id
	if err := h.Directory.Update(c.Request.Context(), id, &tech); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tech)
}

func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	id := c.Param("id")
	if err := h.Directory.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
