package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/interfaces/mock"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerTestNow = time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

func testClock() *mock.TimeProviderMock {
	return &mock.TimeProviderMock{NowFunc: func() time.Time { return handlerTestNow }}
}

func newTestEcho(registry *mock.RegistryMock, correlator *service.Correlator) *echo.Echo {
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	server := NewHTTPServer(registry, correlator, testClock(), log.NewNopLogger())
	RegisterRoutes(e, server, prometheus.NewRegistry())
	return e
}

func newTestCorrelator(affinity *mock.AffinityManagerMock, responses *mock.ResponseBusMock) *service.Correlator {
	return service.NewCorrelator(affinity, responses, service.CorrelatorConfig{ResponseTimeout: time.Second}, log.NewNopLogger())
}

func noopCorrelator() *service.Correlator {
	return newTestCorrelator(&mock.AffinityManagerMock{}, &mock.ResponseBusMock{})
}

func TestHTTPServer_RegisterInstance(t *testing.T) {
	validBody := `{"instance_id":"i1","service_type":"audio","status":"healthy","ttl_ms":15000}`

	tests := []struct {
		name           string
		body           string
		registry       *mock.RegistryMock
		expectedStatus int
	}{
		{
			name: "ok",
			body: validBody,
			registry: &mock.RegistryMock{
				RegisterInstanceFunc: func(ctx context.Context, instance domain.ServiceInstance, ttlMs int) error {
					assert.Equal(t, "i1", instance.InstanceID)
					assert.Equal(t, "audio", instance.ServiceType)
					assert.Equal(t, domain.StatusHealthy, instance.Status)
					assert.Equal(t, handlerTestNow, instance.LastHeartbeat)
					assert.Equal(t, 15000, ttlMs)
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			registry:       &mock.RegistryMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing instance_id",
			body:           `{"service_type":"audio","ttl_ms":15000}`,
			registry:       &mock.RegistryMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing ttl_ms",
			body:           `{"instance_id":"i1","service_type":"audio"}`,
			registry:       &mock.RegistryMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 unknown status",
			body:           `{"instance_id":"i1","service_type":"audio","status":"zombie","ttl_ms":15000}`,
			registry:       &mock.RegistryMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "500 registry error",
			body: validBody,
			registry: &mock.RegistryMock{
				RegisterInstanceFunc: func(ctx context.Context, instance domain.ServiceInstance, ttlMs int) error {
					return assert.AnError
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(tt.registry, noopCorrelator())
			req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHTTPServer_UnregisterInstance(t *testing.T) {
	registry := &mock.RegistryMock{}
	e := newTestEcho(registry, noopCorrelator())

	req := httptest.NewRequest(http.MethodPost, "/v1/unregister/i1?service_type=audio", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, registry.UnregisterInstanceCalls(), 1)
	assert.Equal(t, "audio", registry.UnregisterInstanceCalls()[0].ServiceType)
	assert.Equal(t, "i1", registry.UnregisterInstanceCalls()[0].InstanceID)
}

func TestHTTPServer_UnregisterInstance_ServiceTypeRequired(t *testing.T) {
	e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())

	req := httptest.NewRequest(http.MethodPost, "/v1/unregister/i1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPServer_GetInstances(t *testing.T) {
	registry := &mock.RegistryMock{
		GetHealthyInstancesFunc: func(ctx context.Context, serviceType string) ([]domain.ServiceInstance, error) {
			assert.Equal(t, "audio", serviceType)
			return []domain.ServiceInstance{
				{InstanceID: "i1", ServiceType: "audio", Status: domain.StatusHealthy, AssignedGuilds: []string{"g1"}, LastHeartbeat: handlerTestNow},
			}, nil
		},
	}
	e := newTestEcho(registry, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/v1/instances?service_type=audio", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body InstancesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Instances, 1)
	assert.Equal(t, "i1", body.Instances[0].InstanceId)
	assert.Equal(t, []string{"g1"}, body.Instances[0].AssignedGuilds)
}

func TestHTTPServer_GetInstances_ServiceTypeRequired(t *testing.T) {
	e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/v1/instances", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPServer_GetGuildAssignment(t *testing.T) {
	registry := &mock.RegistryMock{
		GetGuildAssignmentFunc: func(ctx context.Context, guildID string) (domain.GuildAssignment, bool, error) {
			assert.Equal(t, "g1", guildID)
			return domain.GuildAssignment{GuildID: "g1", InstanceID: "i1", ServiceType: "audio", HasVoiceConnection: true}, true, nil
		},
	}
	e := newTestEcho(registry, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/v1/guilds/g1/assignment", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AssignmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "i1", body.InstanceId)
	assert.True(t, body.HasVoiceConnection)
}

func TestHTTPServer_GetGuildAssignment_NotFound(t *testing.T) {
	e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/v1/guilds/g1/assignment", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPServer_IssueCommand_WaitsForResponse(t *testing.T) {
	affinity := &mock.AffinityManagerMock{
		RouteCommandFunc: func(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (string, bool, error) {
			assert.Equal(t, "g1", guildID)
			assert.Equal(t, "audio", serviceType)
			assert.Equal(t, "play", cmd.Type)
			return "i1", true, nil
		},
	}
	responses := &mock.ResponseBusMock{
		SubscribeResponseFunc: func(ctx context.Context, requestID string) (<-chan domain.StreamResponse, func(), error) {
			ch := make(chan domain.StreamResponse, 1)
			ch <- domain.StreamResponse{RequestID: requestID, Data: json.RawMessage(`{"queued":true}`)}
			return ch, func() {}, nil
		},
	}
	e := newTestEcho(&mock.RegistryMock{}, newTestCorrelator(affinity, responses))

	req := httptest.NewRequest(http.MethodPost, "/v1/guilds/g1/commands?service_type=audio",
		strings.NewReader(`{"type":"play","payload":{"track":"abc"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body CommandResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.JSONEq(t, `{"queued":true}`, string(body.Data))
	assert.Empty(t, body.Error)
}

func TestHTTPServer_IssueCommand_NoWait(t *testing.T) {
	affinity := &mock.AffinityManagerMock{
		RouteCommandFunc: func(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (string, bool, error) {
			assert.Empty(t, cmd.RequestID)
			return "i1", true, nil
		},
	}
	responses := &mock.ResponseBusMock{}
	e := newTestEcho(&mock.RegistryMock{}, newTestCorrelator(affinity, responses))

	req := httptest.NewRequest(http.MethodPost, "/v1/guilds/g1/commands?service_type=audio",
		strings.NewReader(`{"type":"play","no_wait":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, responses.SubscribeResponseCalls())
}

func TestHTTPServer_IssueCommand_NoInstance_Returns503(t *testing.T) {
	affinity := &mock.AffinityManagerMock{
		RouteCommandFunc: func(ctx context.Context, guildID, serviceType string, cmd domain.StreamCommand) (string, bool, error) {
			return "", false, nil
		},
	}
	responses := &mock.ResponseBusMock{
		SubscribeResponseFunc: func(ctx context.Context, requestID string) (<-chan domain.StreamResponse, func(), error) {
			return make(chan domain.StreamResponse), func() {}, nil
		},
	}
	e := newTestEcho(&mock.RegistryMock{}, newTestCorrelator(affinity, responses))

	req := httptest.NewRequest(http.MethodPost, "/v1/guilds/g1/commands?service_type=audio",
		strings.NewReader(`{"type":"play"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTPServer_IssueCommand_Validation(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body string
	}{
		{"missing service_type", "/v1/guilds/g1/commands", `{"type":"play"}`},
		{"missing type", "/v1/guilds/g1/commands?service_type=audio", `{}`},
		{"invalid JSON", "/v1/guilds/g1/commands?service_type=audio", `{invalid`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())
			req := httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHTTPServer_Healthz(t *testing.T) {
	e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHTTPServer_Metrics(t *testing.T) {
	e := newTestEcho(&mock.RegistryMock{}, noopCorrelator())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
