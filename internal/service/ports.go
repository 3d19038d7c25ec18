package service

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
)

// Clock — абстракция времени для тестируемости
type Clock interface {
	Now() time.Time
}

// Signer — абстракция подписи JWT
type Signer interface {
	SignRS256(kid string, privateKey *rsa.PrivateKey, claims jwt.Claims) (compact string, err error)
}

// Registry — порт к удалённому реестру пропусков (классы и объекты).
// Ошибки, сообщённые самим реестром, возвращаются как *RegistryError.
type Registry interface {
	GetClass(ctx context.Context, id string) (models.PassClass, error)
	InsertClass(ctx context.Context, c models.PassClass) (models.PassClass, error)
	GetObject(ctx context.Context, id string) (models.PassObject, error)
	InsertObject(ctx context.Context, o models.PassObject) (models.PassObject, error)
}

// Команда и результат для кейса IssueSaveLink
type IssueCommand struct {
	ClassSuffix  string
	ObjectSuffix string
	Ticket       models.Ticket
}

type IssueResult struct {
	URL            string
	ObjectID       string
	ClassID        string
	ObjectInserted bool
	IssuedAt       time.Time
	Warnings       []Warning
}

// LinkResult — результат выпуска ссылки на существующие объекты
type LinkResult struct {
	URL      string
	Kinds    []string
	IssuedAt time.Time
}

// EnsureResult — итог идемпотентного создания ресурса в реестре
type EnsureResult struct {
	ID       string
	Created  bool
	Warnings []Warning
}

// ObjectRef — пара суффиксов объекта и его класса
type ObjectRef struct {
	ObjectSuffix string
	ClassSuffix  string
}

// ExistingObjects — тип объекта -> ссылка; отсутствующие типы не попадают в токен
type ExistingObjects map[string]ObjectRef
