// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brucewavesmarket/saas-starter/internal/authorization"
	"github.com/brucewavesmarket/saas-starter/internal/db"
	"github.com/brucewavesmarket/saas-starter/internal/kratos"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/pkg/account"
	"github.com/brucewavesmarket/saas-starter/pkg/activity"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
	"github.com/brucewavesmarket/saas-starter/pkg/billing"
	"github.com/brucewavesmarket/saas-starter/pkg/metrics"
	"github.com/brucewavesmarket/saas-starter/pkg/status"
	"github.com/brucewavesmarket/saas-starter/pkg/team"
	"github.com/brucewavesmarket/saas-starter/pkg/webhooks"
)

type Config struct {
	InvitationLifetime time.Duration
	ActivityLogLimit   uint64
	Billing            billing.Config
	// AdminVerifier guards the operator endpoints. Nil leaves them
	// unregistered.
	AdminVerifier authentication.TokenVerifierInterface
}

func NewRouter(
	config Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	kratosClient kratos.ClientInterface,
	payments billing.PaymentsInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	activityService := activity.NewService(s, authorizer, config.ActivityLogLimit, tracer, monitor, logger)
	billingService := billing.NewService(s, authorizer, payments, config.Billing, tracer, monitor, logger)
	accountService := account.NewService(s, kratosClient, activityService, config.InvitationLifetime, tracer, monitor, logger)
	teamService := team.NewService(s, authorizer, kratosClient, activityService, tracer, monitor, logger)
	webhooksService := webhooks.NewService(s, activityService, tracer, monitor, logger)

	accountAPI := account.NewAPI(accountService, billingService, logger)
	teamAPI := team.NewAPI(teamService, logger)
	activityAPI := activity.NewAPI(activityService, logger)
	billingAPI := billing.NewAPI(billingService, logger)
	webhooksAPI := webhooks.NewAPI(webhooksService, logger)

	sessionMiddleware := authentication.NewMiddleware(
		authentication.NewSessionVerifier(kratosClient, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	transaction := db.TransactionMiddleware(dbClient, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(map[string]status.CheckFunc{"database": dbClient.Ping}, tracer, monitor, logger).RegisterEndpoints(router)

	// Public endpoints accept anonymous requests but still resolve the
	// caller when a session is present.
	router.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.MaybeAuthenticate, transaction)

		accountAPI.RegisterEndpoints(r)
		teamAPI.RegisterEndpoints(r)
		billingAPI.RegisterEndpoints(r)
		webhooksAPI.RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Authenticate, transaction)

		accountAPI.RegisterProtectedEndpoints(r)
		teamAPI.RegisterProtectedEndpoints(r)
		billingAPI.RegisterProtectedEndpoints(r)
		activityAPI.RegisterEndpoints(r)
	})

	if config.AdminVerifier != nil {
		adminMiddleware := authentication.NewMiddleware(config.AdminVerifier, tracer, monitor, logger)

		router.Group(func(r chi.Router) {
			r.Use(adminMiddleware.Authenticate, transaction)

			accountAPI.RegisterAdminEndpoints(r)
			teamAPI.RegisterAdminEndpoints(r)
		})
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Session-Token", "Stripe-Signature"},
			MaxAge:         300,
		},
	)
}
