// Copyright (c) 2026 Moving Bridge. All rights reserved.

package api

import (
	"net/http"

	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/postgres"
	"github.com/nakknock/movingbridge/internal/platform/redis"
	"github.com/nakknock/movingbridge/internal/platform/respond"
)

// healthStatus is the payload returned by the probe endpoints.
type healthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

/*
health is the liveness probe: it answers as long as the process serves HTTP.

GET /health
*/
func (server *Server) health(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, healthStatus{
		Status:  "ok",
		Version: constants.AppVersion,
	})
}

/*
ready is the readiness probe: it verifies both backing stores respond.

GET /ready

Response:
  - 200: All dependencies reachable
  - 503: One or more dependencies failing, named in the checks map
*/
func (server *Server) ready(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]string)
	healthy := true

	if err := postgres.Ping(request.Context(), server.pool); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}

	if err := redis.Ping(request.Context(), server.redis); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	status := http.StatusOK
	payload := healthStatus{Status: "ready", Version: constants.AppVersion, Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		payload.Status = "degraded"
	}

	respond.JSON(writer, status, payload)
}
