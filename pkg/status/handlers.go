// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	types "github.com/brucewavesmarket/saas-starter/internal/http/types"
	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
	"github.com/brucewavesmarket/saas-starter/internal/version"
)

// CheckFunc pings one downstream dependency.
type CheckFunc func(context.Context) error

type API struct {
	checks map[string]CheckFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

type statusResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type versionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// alive pings every configured dependency and reports availability to the
// monitor. Any failing dependency degrades the response to 503.
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	resp := statusResponse{Status: "ok"}
	code := http.StatusOK

	if len(a.checks) > 0 {
		resp.Dependencies = make(map[string]string, len(a.checks))
	}

	for name, check := range a.checks {
		available := 1.0
		resp.Dependencies[name] = "ok"

		if err := check(ctx); err != nil {
			a.logger.Errorf("Dependency %s is unavailable: %v", name, err)
			available = 0
			resp.Dependencies[name] = "unavailable"
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Errorf("Failed to record availability for %s: %v", name, err)
		}
	}

	types.WriteJSON(w, code, resp)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	resp := versionResponse{Version: version.Version}
	if info, ok := debug.ReadBuildInfo(); ok {
		resp.GoVersion = info.GoVersion
	}

	types.WriteJSON(w, http.StatusOK, resp)
}

func NewAPI(checks map[string]CheckFunc, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
