package domain

// Redis key, stream and channel naming. Every component that touches the shared
// substrate goes through these helpers so the layout lives in one place.

// InstanceKey is the key of a ServiceInstance record: instance:{serviceType}:{instanceId}.
// The record carries the heartbeat TTL; expiry is how dead instances leave the registry.
func InstanceKey(serviceType, instanceID string) string {
	return "instance:" + serviceType + ":" + instanceID
}

// InstanceKeyPrefix is the scan prefix for all instances of a service type.
func InstanceKeyPrefix(serviceType string) string {
	return "instance:" + serviceType
}

// GuildAssignmentKey is the key of a GuildAssignment record: guild_assignment:{guildId}.
func GuildAssignmentKey(guildID string) string {
	return "guild_assignment:" + guildID
}

// InstanceGuildsKey is the key of the set of guild ids assigned to an instance.
func InstanceGuildsKey(instanceID string) string {
	return "instance_guilds:" + instanceID
}

// AffinityKey is the key of a TTL'd AffinityRecord: affinity:{serviceType}:{guildId}.
func AffinityKey(serviceType, guildID string) string {
	return "affinity:" + serviceType + ":" + guildID
}

// LockKey is the key of a distributed lock over a named resource: lock:{resource}.
func LockKey(resource string) string {
	return "lock:" + resource
}

// GuildLockResource is the lock resource name guarding all affinity mutations of one guild.
func GuildLockResource(guildID string) string {
	return "guild:" + guildID
}

// CommandStream is the stream an instance consumes commands from:
// commands:{serviceType}:{instanceId}.
func CommandStream(serviceType, instanceID string) string {
	return "commands:" + serviceType + ":" + instanceID
}

// ConsumerGroup is the shared consumer group name for a service type.
func ConsumerGroup(serviceType string) string {
	return "workers:" + serviceType
}

// ResponseChannel is the pub/sub channel scoped to one request id.
func ResponseChannel(requestID string) string {
	return "response:" + requestID
}
