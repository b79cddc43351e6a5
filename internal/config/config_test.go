package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("BJ_JWT_PRIVATE_KEY", "private2.key")
	defer clear2()

	config.loaded = false

	a := assert.New(t)
	cfg := Instance()
	a.Equal("host=db.internal port=5432 user=blackjack sslmode=disable", cfg.PGDSN)
	a.Equal("public.pem", cfg.JWT.PublicKey)
	a.Equal("private2.key", cfg.JWT.PrivateKey)
	a.Equal(6, cfg.Rules.NumberOfDecks)

	// rule keys absent from the file keep their defaults
	a.True(cfg.Rules.SurrenderAllowed)

	// ensure that it's only loaded once
	_ = os.Setenv("BJ_JWT_PRIVATE_KEY", "private3.key")
	// ensure we aren't using a pointer
	cfg.JWT.PrivateKey = "bad"
	cfg = Instance()
	a.Equal("private2.key", cfg.JWT.PrivateKey)
}

func TestDefaults(t *testing.T) {
	clear := setEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 5080, cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Rules.NumberOfDecks)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
