package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/influmatch/influmatch-backend/api/controllers"
	"github.com/influmatch/influmatch-backend/api/middleware"
	"github.com/influmatch/influmatch-backend/internal/auth"
	"github.com/influmatch/influmatch-backend/internal/favorites"
	"github.com/influmatch/influmatch-backend/internal/influencers"
	"github.com/influmatch/influmatch-backend/pkg/config"
	"github.com/influmatch/influmatch-backend/pkg/db"
	"github.com/influmatch/influmatch-backend/pkg/enums"
	"github.com/influmatch/influmatch-backend/pkg/logger"
	pkgredis "github.com/influmatch/influmatch-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	authService auth.Service,
	registerService auth.RegisterService,
	influencersService influencers.Service,
	favoritesService favorites.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	// A typed nil in the Pinger interface would dodge the nil checks downstream.
	var redisP pkgredis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, authService, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Get("/auth/profile", controllers.AuthProfile(authService, logg))

		r.Route("/influencers", func(r chi.Router) {
			r.Get("/", controllers.InfluencerList(influencersService, logg))
			r.Post("/", controllers.InfluencerCreate(influencersService, logg))
			r.Get("/{influencerId}", controllers.InfluencerDetail(influencersService, logg))
			r.Put("/{influencerId}", controllers.InfluencerUpdate(influencersService, logg))
		})

		r.Route("/companies/favorites", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.RoleCompany), logg))
			r.Get("/", controllers.FavoritesList(favoritesService, logg))
			r.Post("/{influencerId}", controllers.FavoriteAdd(favoritesService, logg))
			r.Delete("/{influencerId}", controllers.FavoriteRemove(favoritesService, logg))
		})
	})

	return r
}
