package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// paymentRequest accepts the payment either bare or wrapped as {"payment": {...}}.
type paymentRequest struct {
	models.Payment
	Wrapped *models.Payment `json:"payment"`
}

func (r *paymentRequest) payment() models.Payment {
	if r.Wrapped != nil {
		return *r.Wrapped
	}
	return r.Payment
}

// CreateAppointment stores the booking exactly as sent.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var apt models.Appointment
	if err := c.ShouldBindJSON(&apt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Appointments.Create(c.Request.Context(), &apt)
	if err != nil {
		h.storeError(c, err, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAppointments lists a patient's appointments for one day
// (e.g. /appointments?email=a@x.com&date=2021-10-05).
func (h *Handler) GetAppointments(c *gin.Context) {
	email := c.Query("email")
	date := c.Query("date")
	if h.Options.NormalizeAppointmentDate {
		date = utils.LocaleDateString(date)
	}

	appointments, err := h.Appointments.FindByEmailAndDate(c.Request.Context(), email, date)
	if err != nil {
		h.storeError(c, err, "Failed to retrieve appointments")
		return
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment answers the appointment or null.
func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.Appointments.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Failed to retrieve appointment")
		return
	}

	c.JSON(http.StatusOK, apt)
}

// UpdateAppointmentPayment records the payment on an appointment.
// Whether the appointment exists or is already paid is not checked.
func (h *Handler) UpdateAppointmentPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Appointments.SetPayment(c.Request.Context(), c.Param("id"), req.payment())
	if err != nil {
		h.storeError(c, err, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, result)
}
