package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrSigning        = errors.New("signing_failure")
	ErrIssuerMismatch = errors.New("issuer_mismatch")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNoCredential   = errors.New("no_credential")
)

// RegistryError — структурированная ошибка ответа реестра
type RegistryError struct {
	Code    int
	Status  string
	Message string
}

func (e *RegistryError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("registry: %d %s: %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("registry: %d: %s", e.Code, e.Message)
}

func (e *RegistryError) IsNotFound() bool { return e.Code == http.StatusNotFound }

// IsNotFound сообщает, что реестр ответил 404
func IsNotFound(err error) bool {
	var re *RegistryError
	return errors.As(err, &re) && re.IsNotFound()
}

// Warning — нефатальная ошибка, после которой выполнение продолжилось
type Warning struct {
	Op         string
	ResourceID string
	Err        error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s %s: %v", w.Op, w.ResourceID, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }
