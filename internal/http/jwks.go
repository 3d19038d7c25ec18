package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// JWKS — отдать публичный ключ, которым подписываются ссылки
// @Summary     JWKS набор ключей
// @Tags        keys
// @Produce     json
// @Success     200 {object} dto.JWKSet
// @Failure     503 {object} APIError
// @Router      /.well-known/keys [get]
func JWKS(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		keys, err := svc.SigningKeys()
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusOK, dto.FromIssuerKeys(keys))
	}
}
