package service

import (
	"fmt"
	"sort"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/models"
)

const (
	SaveURLPrefix = "https://pay.google.com/gp/v/save/"

	claimAudience = "google"
	claimType     = "savetowallet"
)

// DefaultOrigins — origins по умолчанию
var DefaultOrigins = []string{"www.example.com"}

// SaveClaims — claim set save-токена. Имена ключей — контракт с кошельком.
type SaveClaims struct {
	Issuer   string   `json:"iss"`
	Audience string   `json:"aud"`
	Origins  []string `json:"origins"`
	Type     string   `json:"typ"`
	Payload  any      `json:"payload"`
}

func (c SaveClaims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c SaveClaims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c SaveClaims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c SaveClaims) GetIssuer() (string, error)                   { return c.Issuer, nil }
func (c SaveClaims) GetSubject() (string, error)                  { return "", nil }
func (c SaveClaims) GetAudience() (jwt.ClaimStrings, error) {
	return jwt.ClaimStrings{c.Audience}, nil
}

// TokenBuilder собирает и подписывает save-токены ключом эмитента
type TokenBuilder struct {
	cred    credentials.Credential
	signer  Signer
	origins []string
}

func NewTokenBuilder(cred credentials.Credential, signer Signer, origins []string) *TokenBuilder {
	if len(origins) == 0 {
		origins = DefaultOrigins
	}
	return &TokenBuilder{cred: cred, signer: signer, origins: append([]string(nil), origins...)}
}

// BuildTokenForNewObjects — ссылка, по которой кошелёк создаст переданные объекты
// (и классы, если они переданы).
func (b *TokenBuilder) BuildTokenForNewObjects(issuerID string, objects []models.PassObject, classes []models.PassClass) (string, error) {
	if len(objects) == 0 {
		return "", fmt.Errorf("%w: at least one object required", ErrInvalidRequest)
	}
	for _, o := range objects {
		if !UnderIssuer(issuerID, o.ID) || !UnderIssuer(issuerID, o.ClassID) {
			return "", fmt.Errorf("%w: object %q class %q", ErrIssuerMismatch, o.ID, o.ClassID)
		}
	}
	for _, c := range classes {
		if !UnderIssuer(issuerID, c.ID) {
			return "", fmt.Errorf("%w: class %q", ErrIssuerMismatch, c.ID)
		}
	}
	return b.sign(models.NewObjectsPayload{GenericClasses: classes, GenericObjects: objects})
}

// BuildTokenForExistingObjects — ссылка на уже существующие объекты.
// Пустой refs означает демонстрационный набор из всех 7 типов с плейсхолдерами.
func (b *TokenBuilder) BuildTokenForExistingObjects(issuerID string, refs ExistingObjects) (string, []string, error) {
	if issuerID == "" {
		return "", nil, fmt.Errorf("%w: issuer id required", ErrInvalidRequest)
	}
	if len(refs) == 0 {
		refs = DemoExistingObjects()
	}
	payload := models.ExistingObjectsPayload{}
	for kind, ref := range refs {
		if !models.IsObjectKind(kind) {
			return "", nil, fmt.Errorf("%w: unknown object kind %q", ErrInvalidRequest, kind)
		}
		if ref.ObjectSuffix == "" || ref.ClassSuffix == "" {
			continue
		}
		payload[kind] = []models.ObjectStub{{
			ID:      ResourceID(issuerID, ref.ObjectSuffix),
			ClassID: ResourceID(issuerID, ref.ClassSuffix),
		}}
	}
	if len(payload) == 0 {
		return "", nil, fmt.Errorf("%w: at least one object kind required", ErrInvalidRequest)
	}
	kinds := make([]string, 0, len(payload))
	for k := range payload {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	url, err := b.sign(payload)
	if err != nil {
		return "", nil, err
	}
	return url, kinds, nil
}

func (b *TokenBuilder) sign(payload any) (string, error) {
	if b.cred.Identity == "" || b.cred.PrivateKey == nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, ErrNoCredential)
	}
	claims := SaveClaims{
		Issuer:   b.cred.Identity,
		Audience: claimAudience,
		Origins:  b.origins,
		Type:     claimType,
		Payload:  payload,
	}
	compact, err := b.signer.SignRS256(b.cred.KeyID, b.cred.PrivateKey, claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	url := SaveURLPrefix + compact
	log.WithField("link", url).Debug("save link issued")
	return url, nil
}

// DemoExistingObjects — плейсхолдеры для всех типов объектов
func DemoExistingObjects() ExistingObjects {
	return ExistingObjects{
		models.KindEventTicket: {ObjectSuffix: "EVENT_OBJECT_SUFFIX", ClassSuffix: "EVENT_CLASS_SUFFIX"},
		models.KindFlight:      {ObjectSuffix: "FLIGHT_OBJECT_SUFFIX", ClassSuffix: "FLIGHT_CLASS_SUFFIX"},
		models.KindGeneric:     {ObjectSuffix: "GENERIC_OBJECT_SUFFIX", ClassSuffix: "GENERIC_CLASS_SUFFIX"},
		models.KindGiftCard:    {ObjectSuffix: "GIFT_CARD_OBJECT_SUFFIX", ClassSuffix: "GIFT_CARD_CLASS_SUFFIX"},
		models.KindLoyalty:     {ObjectSuffix: "LOYALTY_OBJECT_SUFFIX", ClassSuffix: "LOYALTY_CLASS_SUFFIX"},
		models.KindOffer:       {ObjectSuffix: "OFFER_OBJECT_SUFFIX", ClassSuffix: "OFFER_CLASS_SUFFIX"},
		models.KindTransit:     {ObjectSuffix: "TRANSIT_OBJECT_SUFFIX", ClassSuffix: "TRANSIT_CLASS_SUFFIX"},
	}
}
