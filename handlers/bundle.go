package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Resolution endpoints.
	ResolveHandler gin.HandlerFunc
	BookHandler    gin.HandlerFunc

	// Directory and catalog endpoints.
	GetContactsHandler     gin.HandlerFunc
	GetContactSlotsHandler gin.HandlerFunc
	GetServicesHandler     gin.HandlerFunc

	// Appointment endpoints.
	GetAppointmentHandler    gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Trace endpoints.
	GetTraceHandler   gin.HandlerFunc
	ListTracesHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from a concierge handler.
func NewHandlerBundle(h *ConciergeHandler) *HandlerBundle {
	return &HandlerBundle{
		ResolveHandler:           h.ResolveHandler,
		BookHandler:              h.BookHandler,
		GetContactsHandler:       h.GetContactsHandler,
		GetContactSlotsHandler:   h.GetContactSlotsHandler,
		GetServicesHandler:       h.GetServicesHandler,
		GetAppointmentHandler:    h.GetAppointmentHandler,
		ListAppointmentsHandler:  h.ListAppointmentsHandler,
		CancelAppointmentHandler: h.CancelAppointmentHandler,
		GetTraceHandler:          h.GetTraceHandler,
		ListTracesHandler:        h.ListTracesHandler,
	}
}
