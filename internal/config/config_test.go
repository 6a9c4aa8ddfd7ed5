package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfigDSN(t *testing.T) {
	c := &DBConfig{Host: "db", Port: "5432", User: "app", Password: "secret", Name: "jobs", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=app password=secret dbname=jobs port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}

func TestEnvInt64(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	assert.Equal(t, int64(42), envInt64("TEST_ENV_INT", 7))

	t.Setenv("TEST_ENV_INT", "nope")
	assert.Equal(t, int64(7), envInt64("TEST_ENV_INT", 7))

	t.Setenv("TEST_ENV_INT", "-3")
	assert.Equal(t, int64(7), envInt64("TEST_ENV_INT", 7))

	assert.Equal(t, int64(9), envInt64("TEST_ENV_INT_UNSET", 9))
}

func TestEnvOr(t *testing.T) {
	t.Setenv("TEST_ENV_OR", "set")
	assert.Equal(t, "set", envOr("TEST_ENV_OR", "fallback"))
	assert.Equal(t, "fallback", envOr("TEST_ENV_OR_UNSET", "fallback"))
}
