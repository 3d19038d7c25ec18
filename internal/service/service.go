package service

import (
	"context"
	"crypto/rsa"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/util"
)

// Options — параметры эмитента, фиксируемые при старте
type Options struct {
	IssuerID        string
	ClassSuffix     string
	Origins         []string
	ClassTemplate   bool
	IncludeClass    bool
	InsertObject    bool
	LogoURI         string
	LogoDescription string
}

// Service реализует use case'ы выпуска ссылок "сохранить в кошелёк"
type Service struct {
	provisioner *Provisioner
	tokens      *TokenBuilder
	cred        credentials.Credential
	clock       Clock
	opts        Options
}

func New(registry Registry, cred credentials.Credential, clock Clock, signer Signer, opts Options) *Service {
	return &Service{
		provisioner: NewProvisioner(registry, WithDisplayTemplate(opts.ClassTemplate)),
		tokens:      NewTokenBuilder(cred, signer, opts.Origins),
		cred:        cred,
		clock:       clock,
		opts:        opts,
	}
}

// EnsureClass — идемпотентное создание класса; пустой суффикс берётся из настроек
func (s *Service) EnsureClass(ctx context.Context, classSuffix string) (EnsureResult, error) {
	suffix := util.SanitizeSuffix(firstNonEmpty(classSuffix, s.opts.ClassSuffix))
	return s.provisioner.EnsureClass(ctx, s.opts.IssuerID, suffix)
}

// IssueSaveLink — основной сценарий: класс -> объект -> подписанная ссылка.
// С InsertObject объект создаётся в реестре, а ссылка только ссылается на него.
func (s *Service) IssueSaveLink(ctx context.Context, cmd IssueCommand) (IssueResult, error) {
	classSuffix := util.SanitizeSuffix(firstNonEmpty(cmd.ClassSuffix, s.opts.ClassSuffix))
	ens, err := s.provisioner.EnsureClass(ctx, s.opts.IssuerID, classSuffix)
	if err != nil {
		return IssueResult{}, err
	}
	warnings := ens.Warnings

	objectSuffix := util.SanitizeSuffix(cmd.ObjectSuffix)
	if objectSuffix == "" {
		objectSuffix = uuid.New().String()
	}
	ticket := cmd.Ticket
	if ticket.LogoURI == "" {
		ticket.LogoURI = s.opts.LogoURI
		ticket.LogoDescription = firstNonEmpty(ticket.LogoDescription, s.opts.LogoDescription)
	}
	obj := BuildObject(s.opts.IssuerID, ens.ID, objectSuffix, ticket)

	var (
		url      string
		inserted bool
	)
	if s.opts.InsertObject {
		objRes, err := s.provisioner.EnsureObject(ctx, s.opts.IssuerID, obj)
		if err != nil {
			return IssueResult{}, err
		}
		warnings = append(warnings, objRes.Warnings...)
		inserted = objRes.Created
		url, _, err = s.tokens.BuildTokenForExistingObjects(s.opts.IssuerID, ExistingObjects{
			models.KindGeneric: {ObjectSuffix: objectSuffix, ClassSuffix: classSuffix},
		})
		if err != nil {
			return IssueResult{}, err
		}
	} else {
		var classes []models.PassClass
		if s.opts.IncludeClass {
			classes = append(classes, NewTemplatedClass(ens.ID))
		}
		url, err = s.tokens.BuildTokenForNewObjects(s.opts.IssuerID, []models.PassObject{obj}, classes)
		if err != nil {
			return IssueResult{}, err
		}
	}
	log.WithFields(log.Fields{"object_id": obj.ID, "class_id": ens.ID, "inserted": inserted, "warnings": len(warnings)}).
		Info("save link issued")

	return IssueResult{
		URL:            url,
		ObjectID:       obj.ID,
		ClassID:        ens.ID,
		ObjectInserted: inserted,
		IssuedAt:       s.clock.Now().UTC(),
		Warnings:       warnings,
	}, nil
}

// IssueExistingLink — ссылка на существующие объекты по типам
func (s *Service) IssueExistingLink(_ context.Context, refs ExistingObjects) (LinkResult, error) {
	clean := make(ExistingObjects, len(refs))
	for kind, ref := range refs {
		clean[kind] = ObjectRef{
			ObjectSuffix: util.SanitizeSuffix(ref.ObjectSuffix),
			ClassSuffix:  util.SanitizeSuffix(ref.ClassSuffix),
		}
	}
	url, kinds, err := s.tokens.BuildTokenForExistingObjects(s.opts.IssuerID, clean)
	if err != nil {
		return LinkResult{}, err
	}
	return LinkResult{URL: url, Kinds: kinds, IssuedAt: s.clock.Now().UTC()}, nil
}

// IssuerKey — публичный ключ подписи для JWKS
type IssuerKey struct {
	KID       string
	PublicKey *rsa.PublicKey
}

// SigningKeys — ключи, которыми подписываются токены
func (s *Service) SigningKeys() ([]IssuerKey, error) {
	pub := s.cred.PublicKey()
	if pub == nil {
		return nil, ErrNoCredential
	}
	return []IssuerKey{{KID: s.cred.KeyID, PublicKey: pub}}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
