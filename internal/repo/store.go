package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Store — адаптер Postgres для хранилища ключей эмитента
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

// NewPool открывает пул и проверяет соединение
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewKeyID — key_id для сгенерированного ключа: месяц + случайный хвост,
// уникален и при нескольких ротациях за месяц
func NewKeyID(now time.Time) string {
	return fmt.Sprintf("key-%s-%s", now.UTC().Format("2006-01"), uuid.NewString()[:8])
}

// GetActiveCredential — последний активный ключ; ErrNoCredential если его нет
func (s *Store) GetActiveCredential(ctx context.Context) (credentials.Credential, error) {
	var kid, identity string
	var pemKey []byte
	err := s.pool.QueryRow(ctx, `SELECT `+colKeyID+`, `+colIdentity+`, `+colPrivateKey+` FROM `+tableIssuerCredentials+
		` WHERE `+colStatus+`=$1 ORDER BY `+colCreatedAt+` DESC LIMIT 1`, statusActive).
		Scan(&kid, &identity, &pemKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credentials.Credential{}, service.ErrNoCredential
		}
		return credentials.Credential{}, err
	}
	cred, err := credentials.New(identity, kid, pemKey)
	if err != nil {
		return credentials.Credential{}, fmt.Errorf("credential %s: %w", kid, err)
	}
	return cred, nil
}

// RotateCredential — атомарно переводит активные ключи в retired и сохраняет новый
func (s *Store) RotateCredential(ctx context.Context, kid, identity string, pemKey []byte) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, `UPDATE `+tableIssuerCredentials+` SET `+colStatus+`=$1 WHERE `+colStatus+`=$2`,
		statusRetired, statusActive); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO `+tableIssuerCredentials+` (`+colKeyID+`, `+colIdentity+`, `+colPrivateKey+`, `+colStatus+`) VALUES ($1,$2,$3,$4)`,
		kid, identity, pemKey, statusActive); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
