package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"kafka": map[string]any{
				"groupId": "",
			},
		},
		"geofencing": map[string]any{
			"fallbackRadiusMeters": 15,
		},
		"supabase": map[string]any{
			"jwtSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_KAFKA_GROUPID", want: "pubsub.kafka.groupId"},
		{envKey: "GEOFENCING_FALLBACKRADIUSMETERS", want: "geofencing.fallbackRadiusMeters"},
		{envKey: "SUPABASE_JWTSECRET", want: "supabase.jwtSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Geofencing)
	assert.InDelta(t, 15.0, cfg.Geofencing.FallbackRadiusMeters, 1e-9)
	assert.InDelta(t, 10.0, cfg.Geofencing.MinDistanceMeters, 1e-9)
	assert.Equal(t, time.Minute, cfg.Geofencing.BatchInterval)
	assert.Equal(t, 5*time.Minute, cfg.Geofencing.CourtRefreshInterval)
	assert.False(t, cfg.Geofencing.AutoStart)

	require.NotNil(t, cfg.Radar)
	assert.Equal(t, "https://api.radar.io", cfg.Radar.BaseURL)
	assert.False(t, cfg.Radar.Enabled)

	require.NotNil(t, cfg.CourtIndex)
	assert.Equal(t, "memory", cfg.CourtIndex.Provider)
	assert.Equal(t, "courts:geo", cfg.CourtIndex.Redis.Key)

	assert.NotNil(t, cfg.Supabase)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Geofencing: &GeofencingConfig{FallbackRadiusMeters: 40, BatchInterval: 30 * time.Second},
		CourtIndex: &CourtIndexConfig{Provider: "redis"},
	}
	cfg.applyDefaults()

	assert.InDelta(t, 40.0, cfg.Geofencing.FallbackRadiusMeters, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Geofencing.BatchInterval)
	assert.Equal(t, "redis", cfg.CourtIndex.Provider)
}
