package credentials

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vbncursed/vkr/wallet-service/internal/crypto"
)

var (
	ErrIdentityRequired = errors.New("credential identity required")
)

// Credential — подписывающая идентичность эмитента: email сервисного аккаунта + RSA ключ
type Credential struct {
	Identity   string
	KeyID      string
	PrivateKey *rsa.PrivateKey
}

// serviceAccountFile — поля JSON-ключа сервисного аккаунта, которые нам нужны
type serviceAccountFile struct {
	Type         string `json:"type"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
}

// LoadFile читает JSON-ключ сервисного аккаунта
func LoadFile(path string) (Credential, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Credential{}, fmt.Errorf("read credentials: %w", err)
	}
	return Parse(b)
}

// Parse разбирает содержимое JSON-ключа сервисного аккаунта
func Parse(b []byte) (Credential, error) {
	var f serviceAccountFile
	if err := json.Unmarshal(b, &f); err != nil {
		return Credential{}, fmt.Errorf("decode credentials: %w", err)
	}
	return New(f.ClientEmail, f.PrivateKeyID, []byte(f.PrivateKey))
}

// New собирает Credential из идентичности и PEM ключа
func New(identity, keyID string, pemKey []byte) (Credential, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return Credential{}, ErrIdentityRequired
	}
	key, err := crypto.ParseRSAPrivateKey(pemKey)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Identity: identity, KeyID: strings.TrimSpace(keyID), PrivateKey: key}, nil
}

// PublicKey возвращает публичную часть ключа (nil если ключа нет)
func (c Credential) PublicKey() *rsa.PublicKey {
	if c.PrivateKey == nil {
		return nil
	}
	return &c.PrivateKey.PublicKey
}

// PEM кодирует приватный ключ в PKCS#1 PEM (nil если ключа нет)
func (c Credential) PEM() []byte {
	if c.PrivateKey == nil {
		return nil
	}
	return pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(c.PrivateKey)})
}
