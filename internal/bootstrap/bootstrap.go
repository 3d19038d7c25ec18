// Package bootstrap собирает зависимости сервиса по конфигурации.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/vbncursed/vkr/wallet-service/internal/config"
	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/registry"
	"github.com/vbncursed/vkr/wallet-service/internal/repo"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Credential загружает ключ подписи. Для источника db возвращается и пул,
// который вызывающий обязан закрыть. Отсутствие активного ключа в БД не
// фатально: сервис стартует, а выпуск ссылок отвечает ErrNoCredential.
func Credential(ctx context.Context, cfg config.Config) (credentials.Credential, *pgxpool.Pool, error) {
	switch cfg.CredentialSource {
	case config.CredentialSourceFile:
		cred, err := credentials.LoadFile(cfg.CredentialsFile)
		return cred, nil, err
	case config.CredentialSourceDB:
		pool, err := repo.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return credentials.Credential{}, nil, fmt.Errorf("db: %w", err)
		}
		if err := repo.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return credentials.Credential{}, nil, fmt.Errorf("migrate: %w", err)
		}
		cred, err := repo.NewStore(pool).GetActiveCredential(ctx)
		if errors.Is(err, issvc.ErrNoCredential) {
			log.Warn("no active credential in db, save links are disabled until seed-keys runs")
			return credentials.Credential{}, pool, nil
		}
		if err != nil {
			pool.Close()
			return credentials.Credential{}, nil, err
		}
		return cred, pool, nil
	}
	return credentials.Credential{}, nil, fmt.Errorf("unknown CREDENTIAL_SOURCE %q", cfg.CredentialSource)
}

// Registry выбирает реализацию реестра: Google Wallet API или in-memory.
// Без ключа клиент ходит в API без авторизации, ошибки реестра вернутся предупреждениями.
func Registry(ctx context.Context, cfg config.Config, cred credentials.Credential) (issvc.Registry, error) {
	switch cfg.Registry {
	case config.RegistryHTTP:
		httpClient, err := registry.NewHTTPClient(ctx, cred)
		if errors.Is(err, issvc.ErrNoCredential) {
			log.Warn("registry: no credential, calls are sent unauthenticated")
			httpClient, err = &http.Client{}, nil
		}
		if err != nil {
			return nil, err
		}
		return registry.NewClient(ctx, cfg.RegistryBaseURL, httpClient, cfg.RegistryTimeout)
	case config.RegistryMemory:
		log.Warn("using in-memory registry, nothing is persisted")
		return registry.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown REGISTRY %q", cfg.Registry)
}

// ServiceOptions переносит настройки эмитента в service.Options
func ServiceOptions(cfg config.Config) issvc.Options {
	return issvc.Options{
		IssuerID:        cfg.IssuerID,
		ClassSuffix:     cfg.ClassSuffix,
		Origins:         cfg.Origins,
		ClassTemplate:   cfg.ClassTemplate,
		IncludeClass:    cfg.IncludeClass,
		InsertObject:    cfg.InsertObject,
		LogoURI:         cfg.LogoURI,
		LogoDescription: cfg.LogoDescription,
	}
}
