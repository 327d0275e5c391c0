package handlers

import (
	"mycoordinator/domain"
)

// toInstancesResponse converts domain instances to API response.
func toInstancesResponse(instances []domain.ServiceInstance) InstancesResponse {
	out := make([]InstanceInfo, 0, len(instances))
	for _, i := range instances {
		guilds := i.AssignedGuilds
		if guilds == nil {
			guilds = []string{}
		}
		out = append(out, InstanceInfo{
			InstanceId:     i.InstanceID,
			ServiceType:    i.ServiceType,
			Status:         string(i.Status),
			AssignedGuilds: guilds,
			LastHeartbeat:  i.LastHeartbeat,
		})
	}
	return InstancesResponse{Instances: out}
}

// toAssignmentResponse converts a guild assignment to API response.
func toAssignmentResponse(a domain.GuildAssignment) AssignmentResponse {
	return AssignmentResponse{
		GuildId:            a.GuildID,
		InstanceId:         a.InstanceID,
		ServiceType:        a.ServiceType,
		AssignedAt:         a.AssignedAt,
		LastActivity:       a.LastActivity,
		HasVoiceConnection: a.HasVoiceConnection,
		PlayerActive:       a.PlayerActive,
	}
}
