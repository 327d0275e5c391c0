package handlers

import (
	"testing"
	"time"

	"mycoordinator/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstancesResponse(t *testing.T) {
	heartbeat := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	got := toInstancesResponse([]domain.ServiceInstance{
		{
			InstanceID:     "i1",
			ServiceType:    "audio",
			Status:         domain.StatusHealthy,
			AssignedGuilds: []string{"g1", "g2"},
			LastHeartbeat:  heartbeat,
		},
		{
			InstanceID:    "i2",
			ServiceType:   "audio",
			Status:        domain.StatusDegraded,
			LastHeartbeat: heartbeat,
		},
	})

	require.Len(t, got.Instances, 2)
	assert.Equal(t, "i1", got.Instances[0].InstanceId)
	assert.Equal(t, "healthy", got.Instances[0].Status)
	assert.Equal(t, []string{"g1", "g2"}, got.Instances[0].AssignedGuilds)
	// nil guild slice serializes as [] rather than null
	assert.NotNil(t, got.Instances[1].AssignedGuilds)
	assert.Empty(t, got.Instances[1].AssignedGuilds)
}

func TestToInstancesResponse_Empty(t *testing.T) {
	got := toInstancesResponse(nil)
	assert.NotNil(t, got.Instances)
	assert.Empty(t, got.Instances)
}

func TestToAssignmentResponse(t *testing.T) {
	assignedAt := time.Date(2026, 2, 19, 11, 0, 0, 0, time.UTC)
	lastActivity := assignedAt.Add(30 * time.Minute)

	got := toAssignmentResponse(domain.GuildAssignment{
		GuildID:            "g1",
		InstanceID:         "i1",
		ServiceType:        "audio",
		AssignedAt:         assignedAt,
		LastActivity:       lastActivity,
		HasVoiceConnection: true,
		PlayerActive:       true,
	})

	assert.Equal(t, AssignmentResponse{
		GuildId:            "g1",
		InstanceId:         "i1",
		ServiceType:        "audio",
		AssignedAt:         assignedAt,
		LastActivity:       lastActivity,
		HasVoiceConnection: true,
		PlayerActive:       true,
	}, got)
}
