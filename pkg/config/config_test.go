package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInt_ValorNoNumerico_UsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRATION_MINUTES", "abc")

	// Un valor corrupto no debe degradar a 0 (tokens ya expirados)
	assert.Equal(t, 60, getInt(v, "JWT_EXPIRATION_MINUTES", 60))
}

func TestGetInt_ValorNumericoComoString(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRATION_MINUTES", "15")

	assert.Equal(t, 15, getInt(v, "JWT_EXPIRATION_MINUTES", 60))
}

func TestGetInt_SinValor_UsaDefault(t *testing.T) {
	v := viper.New()

	assert.Equal(t, 60, getInt(v, "JWT_EXPIRATION_MINUTES", 60))
}

func TestLoad_ExpiracionCorrupta_UsaDefault(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.Expiration,
		"JWT_EXPIRATION_MINUTES inválido debe caer al default, no a 0")
}
