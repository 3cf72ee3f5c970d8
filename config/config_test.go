package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty falls back to wildcard", "", []string{"*"}},
		{"single", "https://puresakurahealing.com", []string{"https://puresakurahealing.com"}},
		{"list with blanks", " https://a.com , ,https://b.com", []string{"https://a.com", "https://b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{AllowedOrigins: tt.raw}.Origins())
		})
	}
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 15*time.Second, Config{}.RequestTimeout())
	assert.Equal(t, 3*time.Second, Config{RequestTimeoutSeconds: 3}.RequestTimeout())
	assert.Equal(t, time.Minute, Config{HealthCheckIntervalSeconds: -1}.HealthCheckInterval())
	assert.Equal(t, 10*time.Second, Config{HealthCheckIntervalSeconds: 10}.HealthCheckInterval())
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	defer func() { AppConfig = prev }()

	AppConfig = Config{Env: "production"}
	assert.True(t, IsProduction())
	AppConfig = Config{Env: "development"}
	assert.False(t, IsProduction())
}
