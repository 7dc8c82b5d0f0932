package api

import (
	"net/http"
	"time"

	"backoffice/internal/api/handler"
	"backoffice/internal/api/middleware"
	"backoffice/internal/app/service"
	"backoffice/internal/domain/repository"
	"backoffice/internal/i18n"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(
	userHandler *handler.UserHandler,
	tokens *service.TokenService,
	apiKeyRepo repository.APIKeyRepository,
	msgs *i18n.Catalog,
	defaultLang string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	guards := middleware.NewGuards(tokens, msgs, defaultLang)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.APIKeyGuard(apiKeyRepo, msgs, defaultLang))

		v1.Route("/user", func(u chi.Router) {
			u.Group(userHandler.RegisterPublicRoutes)

			u.Group(func(refresh chi.Router) {
				refresh.Use(jwtauth.Verifier(tokens.RefreshAuth()))
				refresh.Use(guards.RefreshAuthenticator)
				userHandler.RegisterRefreshRoutes(refresh)
			})

			u.Group(func(access chi.Router) {
				access.Use(jwtauth.Verifier(tokens.AccessAuth()))
				access.Use(guards.AccessAuthenticator)
				userHandler.RegisterProtectedRoutes(access)
			})
		})
	})

	return r
}
