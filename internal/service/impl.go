package service

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vbncursed/vkr/wallet-service/internal/crypto"
)

// RealClock — продовая реализация Clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// JWTSigner — адаптер Signer поверх internal/crypto
type JWTSigner struct{}

func (JWTSigner) SignRS256(kid string, privateKey *rsa.PrivateKey, claims jwt.Claims) (string, error) {
	return crypto.SignRS256(kid, privateKey, claims)
}
