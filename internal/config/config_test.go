package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "passkeeper.db", c.DatabasePath)
	assert.Equal(t, DefaultEncryptionKey, c.EncryptionKey)
	assert.Len(t, c.EncryptionKey, 16, "default key must be a valid AES-128 key")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "passkeeper.db", cfg.DatabasePath)
	assert.Equal(t, DefaultEncryptionKey, cfg.EncryptionKey)
}
