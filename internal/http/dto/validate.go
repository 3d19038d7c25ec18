package dto

import (
	"errors"
	"strings"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
)

var (
	ErrQRCodeRequired = errors.New("ticket.qr_code required")
	ErrUnknownKind    = errors.New("unknown object kind")
)

// Validate проверяет инварианты CreateSaveLinkRequest
func (r CreateSaveLinkRequest) Validate() error {
	if strings.TrimSpace(r.Ticket.QRCode) == "" {
		return ErrQRCodeRequired
	}
	return nil
}

// Validate проверяет инварианты ExistingLinkRequest
func (r ExistingLinkRequest) Validate() error {
	for kind := range r.Objects {
		if !models.IsObjectKind(kind) {
			return ErrUnknownKind
		}
	}
	return nil
}
