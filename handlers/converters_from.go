package handlers

import (
	"time"

	"mycoordinator/domain"
	"mycoordinator/service"
)

// fromRegisterRequest converts RegisterRequest to domain.ServiceInstance.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest, now time.Time) (domain.ServiceInstance, error) {
	if req.InstanceId == "" {
		return domain.ServiceInstance{}, service.NewBadParameterError("instance_id is required", nil)
	}
	if req.ServiceType == "" {
		return domain.ServiceInstance{}, service.NewBadParameterError("service_type is required", nil)
	}
	if req.TtlMs <= 0 {
		return domain.ServiceInstance{}, service.NewBadParameterError("ttl_ms is required", nil)
	}

	status := domain.InstanceStatus(req.Status)
	switch status {
	case domain.StatusHealthy, domain.StatusDegraded, domain.StatusUnhealthy:
	case "":
		status = domain.StatusHealthy
	default:
		return domain.ServiceInstance{}, service.NewBadParameterError("status must be healthy, degraded or unhealthy", nil)
	}

	return domain.ServiceInstance{
		InstanceID:    req.InstanceId,
		ServiceType:   req.ServiceType,
		Status:        status,
		LastHeartbeat: now,
	}, nil
}
