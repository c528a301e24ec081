package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/smartappointment/booking/internal/booking/service"
	"github.com/smartappointment/booking/internal/booking/store"
	"github.com/smartappointment/booking/pkg/httpx"
	"github.com/smartappointment/booking/pkg/jwtx"
	"github.com/smartappointment/booking/pkg/slogx"

	_ "github.com/smartappointment/booking/api/booking" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	IdentityService   *service.IdentityService
	SchedulingService *service.SchedulingService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSlots()
	r.registerAppointments()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SmartAppointment Booking API
//	@version		0.1.0
//	@description	Appointment booking service with credential-based sessions.
//	@description
//	@description				Sessions are stateless HS256 JWTs issued by the login endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{IdentityService: r.IdentityService}
	loginHandler := &LoginHandler{IdentityService: r.IdentityService}
	meHandler := &MeHandler{IdentityService: r.IdentityService}

	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential guessing surface)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - authenticated, lenient rate limit by subject
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSlots() {
	h := &SlotsHandler{SchedulingService: r.SchedulingService}

	// Availability is read-only but hits the store per slot; lenient limit.
	r.Mux.Handle("GET /v1/slots",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{
		IdentityService:   r.IdentityService,
		SchedulingService: r.SchedulingService,
	}

	// POST /appointments - moderate rate limit by subject (mutating)
	r.Mux.Handle("POST /v1/appointments",
		httpx.Chain(http.HandlerFunc(h.HandleBook),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/appointments",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/appointments/upcoming",
		httpx.Chain(http.HandlerFunc(h.HandleUpcoming),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/appointments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	// POST /bootstrap - strict rate limit by IP (one-shot setup endpoint)
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier))
}
