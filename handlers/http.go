// Package handlers contains http handlers for mycoordinator.
package handlers

import (
	"fmt"
	"net/http"

	"mycoordinator/domain"
	"mycoordinator/interfaces"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer serves the registry API (instance registration doubling as heartbeat,
// deregistration, instance listing, assignment lookup) and the command entry point
// that routes guild commands through the correlator.
type HTTPServer struct {
	registry   interfaces.Registry
	correlator *service.Correlator
	clock      interfaces.TimeProvider
	logger     log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.Registry, correlator *service.Correlator, clock interfaces.TimeProvider, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry:   registry,
		correlator: correlator,
		clock:      clock,
		logger:     logger,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. The metrics endpoint
// exposes the given gatherer so cmd/main can keep the registry explicit.
func RegisterRoutes(e *echo.Echo, s *HTTPServer, gatherer prometheus.Gatherer) {
	e.POST("/v1/register", s.RegisterInstance)
	e.POST("/v1/unregister/:instance_id", s.UnregisterInstance)
	e.GET("/v1/instances", s.GetInstances)
	e.GET("/v1/guilds/:guild_id/assignment", s.GetGuildAssignment)
	e.POST("/v1/guilds/:guild_id/commands", s.IssueCommand)
	e.GET("/healthz", s.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterInstance (POST /v1/register) upserts the instance record with its heartbeat
// TTL. Returns 200 on success, 400 on parse/validation error, 500 on Redis error.
func (h *HTTPServer) RegisterInstance(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	instance, err := fromRegisterRequest(req, h.clock.Now())
	if err != nil {
		return fmt.Errorf("registerInstance failed to convert request to instance, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.RegisterInstance(ctx, instance, req.TtlMs); err != nil {
		return fmt.Errorf("registerInstance failed to write instance to registry, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}

// UnregisterInstance (POST /v1/unregister/{instance_id}) removes the instance record.
// service_type is a required query parameter.
func (h *HTTPServer) UnregisterInstance(ectx echo.Context) error {
	instanceID := ectx.Param("instance_id")
	serviceType := ectx.QueryParam("service_type")
	if serviceType == "" {
		return service.NewBadParameterError("service_type query parameter is required", nil)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.UnregisterInstance(ctx, serviceType, instanceID); err != nil {
		return fmt.Errorf("unregisterInstance failed to delete instance from registry, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}

// GetInstances (GET /v1/instances?service_type=) lists the healthy instances of a
// service type with their assigned guilds.
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	serviceType := ectx.QueryParam("service_type")
	if serviceType == "" {
		return service.NewBadParameterError("service_type query parameter is required", nil)
	}

	ctx := ectx.Request().Context()
	instances, err := h.registry.GetHealthyInstances(ctx, serviceType)
	if err != nil {
		return fmt.Errorf("getInstances failed to list instances from registry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toInstancesResponse(instances))
}

// GetGuildAssignment (GET /v1/guilds/{guild_id}/assignment) returns the guild's
// current assignment record, or 404 when the guild is unassigned.
func (h *HTTPServer) GetGuildAssignment(ectx echo.Context) error {
	guildID := ectx.Param("guild_id")

	ctx := ectx.Request().Context()
	assignment, found, err := h.registry.GetGuildAssignment(ctx, guildID)
	if err != nil {
		return fmt.Errorf("getGuildAssignment failed to read assignment from registry, err: %w", err)
	}
	if !found {
		return service.NewEntityNotFoundError(fmt.Sprintf("guild '%s' has no assignment", guildID), nil)
	}

	return ectx.JSON(http.StatusOK, toAssignmentResponse(assignment))
}

// IssueCommand (POST /v1/guilds/{guild_id}/commands?service_type=) routes one command
// to the guild's owning instance. The default path waits for the correlated response;
// no_wait=true delivers fire-and-forget and returns 202.
func (h *HTTPServer) IssueCommand(ectx echo.Context) error {
	guildID := ectx.Param("guild_id")
	serviceType := ectx.QueryParam("service_type")
	if serviceType == "" {
		return service.NewBadParameterError("service_type query parameter is required", nil)
	}

	var req CommandRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Type == "" {
		return service.NewBadParameterError("type is required", nil)
	}

	cmd := domain.StreamCommand{Type: req.Type, Payload: req.Payload}
	ctx := ectx.Request().Context()

	if req.NoWait {
		if err := h.correlator.Notify(ctx, guildID, serviceType, cmd); err != nil {
			return err
		}
		return ectx.NoContent(http.StatusAccepted)
	}

	resp, err := h.correlator.Call(ctx, guildID, serviceType, cmd)
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, CommandResponse{Data: resp.Data, Error: resp.Error})
}

// Healthz (GET /healthz) reports process liveness.
func (h *HTTPServer) Healthz(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
