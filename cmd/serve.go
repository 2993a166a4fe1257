// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/brucewavesmarket/saas-starter/internal/config"
	"github.com/brucewavesmarket/saas-starter/internal/db"
	"github.com/brucewavesmarket/saas-starter/internal/kratos"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring/prometheus"
	"github.com/brucewavesmarket/saas-starter/internal/storage"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/pkg/authentication"
	"github.com/brucewavesmarket/saas-starter/pkg/billing"
	"github.com/brucewavesmarket/saas-starter/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("saas-starter", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosPublicURL,
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	payments := billing.NewPayments(specs.StripeSecretKey, specs.StripeWebhookSecret, tracer)

	invitationLifetime, err := time.ParseDuration(specs.InvitationLifetime)
	if err != nil {
		return fmt.Errorf("invalid invitation lifetime %q: %v", specs.InvitationLifetime, err)
	}

	var adminVerifier authentication.TokenVerifierInterface
	if specs.AdminAuthEnabled {
		verifier, err := authentication.NewProviderWithJWKS(context.Background(), specs.OIDCIssuer, specs.JWKSURL)
		if err != nil {
			return fmt.Errorf("failed to set up admin auth: %v", err)
		}
		adminVerifier = authentication.NewJWTVerifierDirect(
			verifier,
			specs.AdminAllowedSubjects,
			specs.AdminRequiredScope,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Admin API authentication is enabled")
	}

	router := web.NewRouter(
		web.Config{
			InvitationLifetime: invitationLifetime,
			ActivityLogLimit:   specs.ActivityLogLimit,
			Billing: billing.Config{
				SuccessURL: specs.BillingSuccessURL,
				CancelURL:  specs.BillingCancelURL,
				TrialDays:  specs.TrialPeriodDays,
			},
			AdminVerifier: adminVerifier,
		},
		s,
		dbClient,
		kratosClient,
		payments,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
