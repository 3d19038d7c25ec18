package registry

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

// WalletScope — OAuth scope эмитента Google Wallet
const WalletScope = "https://www.googleapis.com/auth/wallet_object.issuer"

// serviceAccountConfig — JWT-профиль OAuth 2.0 для сервисного аккаунта
func serviceAccountConfig(cred credentials.Credential) (*oauthjwt.Config, error) {
	if cred.Identity == "" || cred.PrivateKey == nil {
		return nil, service.ErrNoCredential
	}
	return &oauthjwt.Config{
		Email:        cred.Identity,
		PrivateKey:   cred.PEM(),
		PrivateKeyID: cred.KeyID,
		Scopes:       []string{WalletScope},
		TokenURL:     google.JWTTokenURL,
	}, nil
}

// NewHTTPClient — http.Client, который получает и обновляет access token
// сервисного аккаунта и подставляет его в запросы к реестру
func NewHTTPClient(ctx context.Context, cred credentials.Credential) (*http.Client, error) {
	conf, err := serviceAccountConfig(cred)
	if err != nil {
		return nil, err
	}
	return conf.Client(ctx), nil
}
