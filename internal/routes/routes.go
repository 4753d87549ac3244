package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
)

// NewRouter builds the engine with the middleware stack and every route.
// An empty allowedOrigins, or one containing "*", allows any origin.
func NewRouter(
	h *handlers.Handler,
	verifier auth.TokenVerifier,
	logger *zerolog.Logger,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	Setup(r, h, middleware.OptionalIdentity(verifier, logger))
	return r
}

// Setup registers the route table. identity runs only on the routes that read the caller.
func Setup(r *gin.Engine, h *handlers.Handler, identity gin.HandlerFunc) {
	r.GET("/", h.Home)

	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments", identity, h.GetAppointments)
	r.GET("/appointments/:id", identity, h.GetAppointment)
	r.PUT("/appointments/:id", h.UpdateAppointmentPayment)

	r.POST("/users", h.CreateUser)
	r.PUT("/users", h.UpsertUser)
	r.PUT("/users/admin", identity, h.MakeAdmin)
	r.GET("/users/:email", h.CheckAdmin)

	r.POST("/create-payment-intent", identity, h.CreatePaymentIntent)

	r.POST("/doctors", h.CreateDoctor)
	r.GET("/doctors", h.GetDoctors)
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}

	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	return cfg
}
