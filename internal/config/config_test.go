package config

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ISSUER_ID", "3388000000022248227")
	t.Setenv("ORIGINS", "")
	t.Setenv("REGISTRY_TIMEOUT_S", "")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.Bind)
	assert.Equal(t, "3388000000022248227", cfg.IssuerID)
	assert.Equal(t, []string{"www.example.com"}, cfg.Origins)
	assert.Equal(t, CredentialSourceFile, cfg.CredentialSource)
	assert.Equal(t, RegistryHTTP, cfg.Registry)
	assert.Equal(t, 30*time.Second, cfg.RegistryTimeout)
	assert.False(t, cfg.ClassTemplate)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORIGINS", "a.example.com, b.example.com,")
	t.Setenv("REGISTRY", "MEMORY")
	t.Setenv("REGISTRY_TIMEOUT_S", "-4")
	t.Setenv("CLASS_TEMPLATE", "true")
	t.Setenv("ENABLE_SWAGGER", "nonsense")

	cfg := Load()
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Origins)
	assert.Equal(t, RegistryMemory, cfg.Registry)
	assert.Equal(t, 30*time.Second, cfg.RegistryTimeout)
	assert.True(t, cfg.ClassTemplate)
	assert.False(t, cfg.EnableSwagger)
}

func TestSetupLogging(t *testing.T) {
	defer SetupLogging("info", "text")

	SetupLogging("debug", "json")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, isJSON)

	SetupLogging("bogus", "text")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
