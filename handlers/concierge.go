package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "concierge/database/repository/appointment"
	"concierge/services/concierge"
	"concierge/utils"
)

// ConciergeHandler exposes the resolution pipeline and its stores over HTTP.
type ConciergeHandler struct {
	Service concierge.ConciergeService
	Logger  *zap.Logger
}

// NewConciergeHandler creates a handler backed by the given service.
func NewConciergeHandler(svc concierge.ConciergeService) *ConciergeHandler {
	return &ConciergeHandler{
		Service: svc,
		Logger:  utils.GetLogger().Named("handlers"),
	}
}

// ResolveHandler runs the pipeline over a free-text prompt.
func (h *ConciergeHandler) ResolveHandler(c *gin.Context) {
	var input struct {
		Prompt   string `json:"prompt" binding:"required"`
		Timezone string `json:"timezone"`
		UserID   string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	out, err := h.Service.Resolve(c.Request.Context(), input.Prompt, input.Timezone, input.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve prompt", err.Error())
		return
	}
	c.JSON(http.StatusOK, out)
}

// BookHandler commits a resolved draft as an appointment.
func (h *ConciergeHandler) BookHandler(c *gin.Context) {
	var req concierge.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appointment, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrConflictOnWrite) {
			utils.JSONError(c, http.StatusConflict, "slot no longer available",
				"a conflicting appointment was created in the meantime")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to book appointment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetContactsHandler returns the contact directory.
func (h *ConciergeHandler) GetContactsHandler(c *gin.Context) {
	contacts, err := h.Service.Contacts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list contacts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetContactSlotsHandler enumerates bookable slots for a contact.
func (h *ConciergeHandler) GetContactSlotsHandler(c *gin.Context) {
	contactID := c.Param("id")
	daysAhead, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	duration, _ := strconv.Atoi(c.DefaultQuery("duration", "0"))
	locationID := c.Query("location_id")

	slots, err := h.Service.ContactSlots(c.Request.Context(), contactID, daysAhead, duration, locationID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_id": contactID, "slots": slots})
}

// GetServicesHandler returns the service catalog.
func (h *ConciergeHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Service.Services(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetAppointmentHandler retrieves one appointment by ID.
func (h *ConciergeHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	appointment, err := h.Service.Appointment(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointment", err.Error())
		return
	}
	if appointment == nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// ListAppointmentsHandler lists a contact's active appointments.
func (h *ConciergeHandler) ListAppointmentsHandler(c *gin.Context) {
	contactID := c.Query("contact_id")
	if contactID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing contact_id query parameter", "")
		return
	}
	appointments, err := h.Service.AppointmentsByContact(c.Request.Context(), contactID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_id": contactID, "appointments": appointments})
}

// CancelAppointmentHandler marks an appointment cancelled.
func (h *ConciergeHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelAppointment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel appointment", err.Error())
		return
	}
	h.Logger.Info("appointment cancelled", zap.String("appointment_id", id))
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "appointment_id": id})
}

// GetTraceHandler retrieves one decision trace by ID.
func (h *ConciergeHandler) GetTraceHandler(c *gin.Context) {
	traceID := c.Param("id")
	trace, err := h.Service.Trace(c.Request.Context(), traceID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch trace", err.Error())
		return
	}
	if trace == nil {
		utils.JSONError(c, http.StatusNotFound, "trace not found", traceID)
		return
	}
	c.JSON(http.StatusOK, trace)
}

// ListTracesHandler lists recent decision traces.
func (h *ConciergeHandler) ListTracesHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	traces, err := h.Service.Traces(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list traces", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"traces": traces})
}
