package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
)

// ResourceID собирает идентификатор ресурса реестра "issuerId.suffix"
func ResourceID(issuerID, suffix string) string {
	return issuerID + "." + suffix
}

// UnderIssuer проверяет, что id принадлежит эмитенту
func UnderIssuer(issuerID, id string) bool {
	return issuerID != "" && strings.HasPrefix(id, issuerID+".") && len(id) > len(issuerID)+1
}

// Provisioner гарантирует наличие классов и объектов в реестре.
// Get и insert выполняются подряд, без повторов; конфликт при гонке
// двух вызывающих возвращается как предупреждение.
type Provisioner struct {
	registry  Registry
	templated bool
}

type ProvisionerOption func(*Provisioner)

// WithDisplayTemplate — создавать классы с шаблоном отображения вместо минимального
func WithDisplayTemplate(on bool) ProvisionerOption {
	return func(p *Provisioner) { p.templated = on }
}

func NewProvisioner(registry Registry, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{registry: registry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// EnsureClass — создаёт класс issuerId.classSuffix, если реестр его не знает.
// Ошибки реестра (кроме 404 на get) не фатальны: id возвращается всегда, ошибка уходит в Warnings.
func (p *Provisioner) EnsureClass(ctx context.Context, issuerID, classSuffix string) (EnsureResult, error) {
	if strings.TrimSpace(issuerID) == "" || strings.TrimSpace(classSuffix) == "" {
		return EnsureResult{}, fmt.Errorf("%w: issuer id and class suffix required", ErrInvalidRequest)
	}
	id := ResourceID(issuerID, classSuffix)
	res := EnsureResult{ID: id}
	logger := log.WithField("class_id", id)

	_, err := p.registry.GetClass(ctx, id)
	switch {
	case err == nil:
		logger.Info("class already exists")
		return res, nil
	case !IsNotFound(err):
		logger.WithError(err).Warn("class lookup failed")
		res.Warnings = append(res.Warnings, Warning{Op: "get_class", ResourceID: id, Err: err})
		return res, nil
	}

	class := models.PassClass{ID: id}
	if p.templated {
		class = NewTemplatedClass(id)
	}
	if _, err := p.registry.InsertClass(ctx, class); err != nil {
		logger.WithError(err).Warn("class insert failed")
		res.Warnings = append(res.Warnings, Warning{Op: "insert_class", ResourceID: id, Err: err})
		return res, nil
	}
	logger.Info("class created")
	res.Created = true
	return res, nil
}

// EnsureObject — то же ветвление для объекта: существует / 404 -> insert / прочая ошибка
func (p *Provisioner) EnsureObject(ctx context.Context, issuerID string, obj models.PassObject) (EnsureResult, error) {
	if !UnderIssuer(issuerID, obj.ID) || !UnderIssuer(issuerID, obj.ClassID) {
		return EnsureResult{}, fmt.Errorf("%w: object %q class %q", ErrIssuerMismatch, obj.ID, obj.ClassID)
	}
	res := EnsureResult{ID: obj.ID}
	logger := log.WithField("object_id", obj.ID)

	_, err := p.registry.GetObject(ctx, obj.ID)
	switch {
	case err == nil:
		logger.Info("object already exists")
		return res, nil
	case !IsNotFound(err):
		logger.WithError(err).Warn("object lookup failed")
		res.Warnings = append(res.Warnings, Warning{Op: "get_object", ResourceID: obj.ID, Err: err})
		return res, nil
	}

	if _, err := p.registry.InsertObject(ctx, obj); err != nil {
		logger.WithError(err).Warn("object insert failed")
		res.Warnings = append(res.Warnings, Warning{Op: "insert_object", ResourceID: obj.ID, Err: err})
		return res, nil
	}
	logger.Info("object created")
	res.Created = true
	return res, nil
}
