package crypto

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoKey = errors.New("rsa private key required")
)

// ParseRSAPrivateKey читает PEM (PKCS#1 или PKCS#8) с RSA ключом
func ParseRSAPrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse rsa key: %w", err)
	}
	return key, nil
}

// SignRS256 создает compact JWT c alg RS256. kid добавляется в заголовок, если задан.
func SignRS256(kid string, priv *rsa.PrivateKey, claims jwt.Claims) (string, error) {
	if priv == nil {
		return "", ErrNoKey
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	compact, err := tok.SignedString(priv)
	if err != nil {
		return "", fmt.Errorf("sign rs256: %w", err)
	}
	return compact, nil
}

// VerifyRS256 проверяет подпись и разбирает claims в переданную структуру
func VerifyRS256(compact string, pub *rsa.PublicKey, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(compact, claims, func(t *jwt.Token) (any, error) {
		return pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	return err
}
