package mux

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"blackjack-server/internal/config"
	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/round"
)

var setupOnce sync.Once

// setupTestKeys generates a one-off RSA key pair, points the configuration
// at it, and loads the signing keys
func setupTestKeys(t *testing.T) {
	t.Helper()

	setupOnce.Do(func() {
		dir, err := os.MkdirTemp("", "blackjack-mux-test")
		if err != nil {
			panic(err)
		}

		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}

		privatePath := filepath.Join(dir, "private.key")
		privatePEM := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		if err := os.WriteFile(privatePath, privatePEM, 0600); err != nil {
			panic(err)
		}

		publicPath := filepath.Join(dir, "public.pem")
		publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			panic(err)
		}
		publicPEM := pem.EncodeToMemory(&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: publicDER,
		})
		if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
			panic(err)
		}

		_ = os.Setenv("BJ_CONFIG_FILE", filepath.Join(dir, "does-not-exist.yaml"))
		_ = os.Setenv("BJ_JWT_PRIVATE_KEY", privatePath)
		_ = os.Setenv("BJ_JWT_PUBLIC_KEY", publicPath)

		if err := config.Load(); err != nil {
			panic(err)
		}

		jwt.LoadKeys()
	})
}

func testServer(t *testing.T) (*httptest.Server, *round.MemoryStore) {
	t.Helper()
	setupTestKeys(t)

	store := round.NewMemoryStore()
	ts := httptest.NewServer(NewMux("v-test", store))
	t.Cleanup(ts.Close)

	return ts, store
}
