package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "instance:audio:i-1", InstanceKey("audio", "i-1"))
	assert.Equal(t, "instance:audio", InstanceKeyPrefix("audio"))
	assert.Equal(t, "guild_assignment:g-1", GuildAssignmentKey("g-1"))
	assert.Equal(t, "instance_guilds:i-1", InstanceGuildsKey("i-1"))
	assert.Equal(t, "affinity:audio:g-1", AffinityKey("audio", "g-1"))
	assert.Equal(t, "lock:guild:g-1", LockKey(GuildLockResource("g-1")))
	assert.Equal(t, "commands:audio:i-1", CommandStream("audio", "i-1"))
	assert.Equal(t, "workers:audio", ConsumerGroup("audio"))
	assert.Equal(t, "response:r-1", ResponseChannel("r-1"))
}
