package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Check_LockTTL(t *testing.T) {
	cfg := Config{
		Payment: PaymentConfig{VerifyTimeout: 10 * time.Second, LockTimeout: 30 * time.Second},
		Redis:   RedisConfig{Addr: "localhost:6379", LockTTL: time.Minute},
	}
	assert.NoError(t, cfg.Check())

	cfg.Redis.LockTTL = 5 * time.Second
	assert.Error(t, cfg.Check())

	cfg.Redis.Addr = ""
	assert.NoError(t, cfg.Check())
}
