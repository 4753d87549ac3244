package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal-api/internal/repository"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// Options switches between the behaviours left open for deployment.
type Options struct {
	// NormalizeAppointmentDate rewrites the date query as "M/D/YYYY" before matching.
	NormalizeAppointmentDate bool
	// AdminSilentDenial leaves a non-admin promotion request unanswered instead of a 403.
	AdminSilentDenial bool
	// PaymentRequiresAuth answers 401 on payment intents without an identity.
	PaymentRequiresAuth bool
}

// Handler holds the collaborators every route needs.
type Handler struct {
	Appointments repository.AppointmentRepository
	Users        repository.UserRepository
	Doctors      repository.DoctorRepository
	Payments     services.PaymentGateway
	Logger       *zerolog.Logger
	Options      Options
}

func NewHandler(
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	doctors repository.DoctorRepository,
	payments services.PaymentGateway,
	logger *zerolog.Logger,
	opts Options,
) *Handler {
	return &Handler{
		Appointments: appointments,
		Users:        users,
		Doctors:      doctors,
		Payments:     payments,
		Logger:       logger,
		Options:      opts,
	}
}

// Home answers the root route.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello From Doctors Portal!")
}

// storeError answers a failed store call: 400 for a malformed id, 500 otherwise.
func (h *Handler) storeError(c *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	h.Logger.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
