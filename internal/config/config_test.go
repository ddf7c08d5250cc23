package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("APP_TRUSTED_PROXIES", "10.0.0.1 10.0.0.2")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "pos", cfg.Storage.KeyPrefix)
	assert.Equal(t, 2*time.Second, cfg.Storage.Timeout)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 32, cfg.Printer.Width)
	assert.Equal(t, "THANK YOU! VISIT AGAIN", cfg.Restaurant.Footer)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.App.TrustedProxies)
}

func TestConnectionStrings(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", Name: "pos", User: "till", Password: "secret",
		SSLMode: "disable", Timezone: "Asia/Kolkata",
	}
	assert.Equal(t, "host=db user=till password=secret dbname=pos port=5432 sslmode=disable TimeZone=Asia/Kolkata", db.DSN())

	r := RedisConfig{Host: "cache", Port: "6379"}
	assert.Equal(t, "cache:6379", r.Addr())
}
