package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/logistics-net-api/internal/application/account"
	"github.com/logistics-net-api/internal/application/otp"
	"github.com/logistics-net-api/internal/application/recommend"
	"github.com/logistics-net-api/internal/config"
	"github.com/logistics-net-api/internal/transport/http/handler"
	appmiddleware "github.com/logistics-net-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
// ctx bounds background work owned by the router, such as limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Applied to the endpoints that send mail or check secrets.
	sensitiveRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	otpSvc := otp.NewService(otp.ServiceDeps{
		Ledger: deps.OTPLedger,
		Mailer: deps.Mailer,
		TTL:    cfg.OTP.TTL,
	})
	accountSvc := account.NewService(account.ServiceDeps{Stores: deps.AccountStores})
	recommendSvc := recommend.NewService(deps.Predictor)

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(otpSvc)
	accountH := handler.NewAccountHandler(accountSvc)
	companyH := handler.NewCompanyHandler(deps.Catalog)
	recommendH := handler.NewRecommendHandler(recommendSvc)

	r.Get("/", healthH.Welcome)
	r.Get("/favicon.ico", healthH.Favicon)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Get("/company/{name}", companyH.Get)
		r.Post("/recommend", recommendH.Recommend)

		r.Group(func(r chi.Router) {
			r.Use(sensitiveRL.Limit)

			r.Post("/send-otp", otpH.Send)
			r.Post("/verify-otp", otpH.Verify)
			r.Post("/register/{variant}", accountH.Register)
			r.Post("/login/{variant}", accountH.Login)
		})
	})

	return r
}
