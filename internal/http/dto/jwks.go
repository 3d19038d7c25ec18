package dto

import (
	"encoding/base64"
	"math/big"

	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid,omitempty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}
type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// FromIssuerKeys маппит ключи подписи в JWKSet
func FromIssuerKeys(keys []issvc.IssuerKey) JWKSet {
	out := JWKSet{Keys: make([]JWK, 0, len(keys))}
	for _, k := range keys {
		if k.PublicKey == nil {
			continue
		}
		out.Keys = append(out.Keys, JWK{
			Kty: "RSA",
			Kid: k.KID,
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(k.PublicKey.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(k.PublicKey.E)).Bytes()),
		})
	}
	return out
}
