package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "badger", cfg.Storage.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Empty(t, cfg.Auth.SecretKey)
}

func TestNew_RequiresSecretKey(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := New()
	require.ErrorIs(t, err, ErrSecretKeyMissing)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Auth.SecretKey = "s3cr3t"
	require.NoError(t, cfg.validate())

	cfg.Auth.AccessTokenTTL = 0
	require.Error(t, cfg.validate())
}
