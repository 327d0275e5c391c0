package handlers

import (
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegisterRequest(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         RegisterRequest
		expected    domain.ServiceInstance
		expectedErr bool
	}{
		{
			name: "ok",
			req:  RegisterRequest{InstanceId: "i1", ServiceType: "audio", Status: "degraded", TtlMs: 15000},
			expected: domain.ServiceInstance{
				InstanceID:    "i1",
				ServiceType:   "audio",
				Status:        domain.StatusDegraded,
				LastHeartbeat: now,
			},
		},
		{
			name: "empty status defaults to healthy",
			req:  RegisterRequest{InstanceId: "i1", ServiceType: "audio", TtlMs: 15000},
			expected: domain.ServiceInstance{
				InstanceID:    "i1",
				ServiceType:   "audio",
				Status:        domain.StatusHealthy,
				LastHeartbeat: now,
			},
		},
		{
			name:        "missing instance_id",
			req:         RegisterRequest{ServiceType: "audio", TtlMs: 15000},
			expectedErr: true,
		},
		{
			name:        "missing service_type",
			req:         RegisterRequest{InstanceId: "i1", TtlMs: 15000},
			expectedErr: true,
		},
		{
			name:        "zero ttl_ms",
			req:         RegisterRequest{InstanceId: "i1", ServiceType: "audio"},
			expectedErr: true,
		},
		{
			name:        "negative ttl_ms",
			req:         RegisterRequest{InstanceId: "i1", ServiceType: "audio", TtlMs: -1},
			expectedErr: true,
		},
		{
			name:        "unknown status",
			req:         RegisterRequest{InstanceId: "i1", ServiceType: "audio", Status: "zombie", TtlMs: 15000},
			expectedErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromRegisterRequest(tt.req, now)
			if tt.expectedErr {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
