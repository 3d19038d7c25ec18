package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRSAPrivateKey_PKCS1AndPKCS8(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pkcs1 := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	parsed, err := ParseRSAPrivateKey(pkcs1)
	require.NoError(t, err)
	assert.True(t, key.Equal(parsed))

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pkcs8 := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	parsed, err = ParseRSAPrivateKey(pkcs8)
	require.NoError(t, err)
	assert.True(t, key.Equal(parsed))
}

func TestParseRSAPrivateKey_Garbage(t *testing.T) {
	_, err := ParseRSAPrivateKey([]byte("not a key"))
	require.Error(t, err)
}

func TestSignAndVerifyRS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	compact, err := SignRS256("kid-1", key, jwt.MapClaims{"iss": "svc@example.com"})
	require.NoError(t, err)

	got := jwt.MapClaims{}
	require.NoError(t, VerifyRS256(compact, &key.PublicKey, got))
	assert.Equal(t, "svc@example.com", got["iss"])

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	assert.Error(t, VerifyRS256(compact, &other.PublicKey, jwt.MapClaims{}))
}

func TestSignRS256_NilKey(t *testing.T) {
	_, err := SignRS256("", nil, jwt.MapClaims{})
	assert.ErrorIs(t, err, ErrNoKey)
}
