package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	walletobjects "google.golang.org/api/walletobjects/v1"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

const (
	DefaultBaseURL = "https://walletobjects.googleapis.com/"

	defaultTimeout = 30 * time.Second
)

// Client — реестр поверх Google Wallet API (walletobjects/v1).
// Одна попытка на вызов, без повторов.
type Client struct {
	svc     *walletobjects.Service
	timeout time.Duration
}

// NewClient — httpClient должен уже нести авторизацию (см. NewHTTPClient);
// nil означает клиент без авторизации.
func NewClient(ctx context.Context, baseURL string, httpClient *http.Client, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	svc, err := walletobjects.NewService(ctx, option.WithEndpoint(baseURL), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("registry: walletobjects: %w", err)
	}
	return &Client{svc: svc, timeout: timeout}, nil
}

func (c *Client) GetClass(ctx context.Context, id string) (models.PassClass, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out models.PassClass
	got, err := c.svc.Genericclass.Get(id).Context(ctx).Do()
	if err != nil {
		return out, registryError("get class", id, err)
	}
	return out, convert(got, &out)
}

func (c *Client) InsertClass(ctx context.Context, class models.PassClass) (models.PassClass, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out models.PassClass
	in := new(walletobjects.GenericClass)
	if err := convert(class, in); err != nil {
		return out, err
	}
	got, err := c.svc.Genericclass.Insert(in).Context(ctx).Do()
	if err != nil {
		return out, registryError("insert class", class.ID, err)
	}
	return out, convert(got, &out)
}

func (c *Client) GetObject(ctx context.Context, id string) (models.PassObject, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out models.PassObject
	got, err := c.svc.Genericobject.Get(id).Context(ctx).Do()
	if err != nil {
		return out, registryError("get object", id, err)
	}
	return out, convert(got, &out)
}

func (c *Client) InsertObject(ctx context.Context, obj models.PassObject) (models.PassObject, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out models.PassObject
	in := new(walletobjects.GenericObject)
	if err := convert(obj, in); err != nil {
		return out, err
	}
	// пустые подписи и значения текстовых блоков отправляются как есть
	for _, tm := range in.TextModulesData {
		tm.ForceSendFields = []string{"Header", "Body"}
	}
	got, err := c.svc.Genericobject.Insert(in).Context(ctx).Do()
	if err != nil {
		return out, registryError("insert object", obj.ID, err)
	}
	return out, convert(got, &out)
}

// registryError переводит *googleapi.Error в *service.RegistryError;
// транспортные ошибки оборачиваются как есть.
func registryError(op, id string, err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("registry: %s %s: %w", op, id, err)
	}
	re := &service.RegistryError{Code: gerr.Code, Message: gerr.Message}
	if len(gerr.Errors) > 0 {
		re.Status = gerr.Errors[0].Reason
	}
	if re.Message == "" {
		re.Message = http.StatusText(gerr.Code)
	}
	return re
}

// convert переносит значение между моделями и типами walletobjects через JSON:
// имена полей у них совпадают.
func convert(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("registry: encode %T: %w", in, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("registry: decode %T: %w", out, err)
	}
	return nil
}
