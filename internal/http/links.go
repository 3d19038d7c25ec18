package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// EnsureClass — идемпотентно создать класс эмитента
// @Summary     Создать класс, если его нет
// @Tags        classes
// @Accept      json
// @Produce     json
// @Param       request body dto.EnsureClassRequest true "Ensure class"
// @Success     200 {object} dto.EnsureClassResponse
// @Failure     400 {object} APIError
// @Router      /api/v1/classes [post]
func EnsureClass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.EnsureClassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		res, err := svc.EnsureClass(c.Request().Context(), req.ClassSuffix)
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusOK, dto.FromEnsureResult(res))
	}
}

// CreateSaveLink — выпуск ссылки "сохранить в кошелёк" для билета
// @Summary     Выпуск ссылки для нового объекта
// @Tags        save-links
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateSaveLinkRequest true "Ticket"
// @Success     201 {object} dto.CreateSaveLinkResponse
// @Failure     400 {object} APIError
// @Failure     500 {object} APIError
// @Failure     503 {object} APIError
// @Router      /api/v1/save-links [post]
func CreateSaveLink(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateSaveLinkRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			return writeError(c, err)
		}
		res, err := svc.IssueSaveLink(c.Request().Context(), req.ToCommand())
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusCreated, dto.FromIssueResult(res))
	}
}

// CreateExistingLink — ссылка на уже созданные объекты
// @Summary     Выпуск ссылки для существующих объектов
// @Tags        save-links
// @Accept      json
// @Produce     json
// @Param       request body dto.ExistingLinkRequest true "Objects by kind"
// @Success     201 {object} dto.ExistingLinkResponse
// @Failure     400 {object} APIError
// @Failure     500 {object} APIError
// @Router      /api/v1/save-links/existing [post]
func CreateExistingLink(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ExistingLinkRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			return writeError(c, err)
		}
		res, err := svc.IssueExistingLink(c.Request().Context(), req.ToExistingObjects())
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusCreated, dto.FromLinkResult(res))
	}
}
