package registry

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/crypto"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

func testCredential(t *testing.T) credentials.Credential {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return credentials.Credential{Identity: "svc@example.iam.gserviceaccount.com", KeyID: "k1", PrivateKey: key}
}

func TestServiceAccountConfig(t *testing.T) {
	cred := testCredential(t)
	conf, err := serviceAccountConfig(cred)
	require.NoError(t, err)
	assert.Equal(t, cred.Identity, conf.Email)
	assert.Equal(t, "k1", conf.PrivateKeyID)
	assert.Equal(t, []string{WalletScope}, conf.Scopes)
	assert.Equal(t, google.JWTTokenURL, conf.TokenURL)

	_, err = NewHTTPClient(context.Background(), credentials.Credential{Identity: "x"})
	assert.ErrorIs(t, err, service.ErrNoCredential)
}

func TestServiceAccount_BearerOnRegistryCalls(t *testing.T) {
	cred := testCredential(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))

		claims := jwt.MapClaims{}
		assert.NoError(t, crypto.VerifyRS256(r.PostForm.Get("assertion"), cred.PublicKey(), claims))
		assert.Equal(t, cred.Identity, claims["iss"])
		assert.Equal(t, WalletScope, claims["scope"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/walletobjects/v1/genericObject/338.obj", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"338.obj","classId":"338.tpl"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	conf, err := serviceAccountConfig(cred)
	require.NoError(t, err)
	conf.TokenURL = srv.URL + "/token"

	c, err := NewClient(context.Background(), srv.URL, conf.Client(context.Background()), time.Second)
	require.NoError(t, err)
	got, err := c.GetObject(context.Background(), "338.obj")
	require.NoError(t, err)
	assert.Equal(t, "338.tpl", got.ClassID)
}
