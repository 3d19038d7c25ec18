package http

import (
	"errors"
	"net/http"

	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// MapError переводит доменные/DTO ошибки в HTTP статус и тело APIError
func MapError(err error) (int, APIError) {
	switch {
	// DTO validation
	case errors.Is(err, dto.ErrQRCodeRequired):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "ticket.qr_code required"}
	case errors.Is(err, dto.ErrUnknownKind):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "unknown object kind"}

	// Service errors
	case errors.Is(err, issvc.ErrInvalidRequest):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: err.Error()}
	case errors.Is(err, issvc.ErrIssuerMismatch):
		return http.StatusUnprocessableEntity, APIError{Code: "issuer_mismatch", Message: "resource id outside issuer"}
	case errors.Is(err, issvc.ErrNoCredential):
		return http.StatusServiceUnavailable, APIError{Code: "no_credential", Message: "signing credential not configured"}
	case errors.Is(err, issvc.ErrSigning):
		return http.StatusInternalServerError, APIError{Code: "signing_failure", Message: "token signing failed"}
	}
	return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
}
