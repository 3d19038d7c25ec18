package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/registry"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

func TestEnsureClass_CreatesOnceAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	p := service.NewProvisioner(reg)

	first, err := p.EnsureClass(ctx, testIssuer, "TesteTeste2")
	require.NoError(t, err)
	assert.Equal(t, testIssuer+".TesteTeste2", first.ID)
	assert.True(t, first.Created)
	assert.Empty(t, first.Warnings)

	second, err := p.EnsureClass(ctx, testIssuer, "TesteTeste2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Created)
	assert.Empty(t, second.Warnings)

	assert.Equal(t, 1, reg.ClassInserts())
}

func TestEnsureClass_MinimalClassByDefault(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()

	_, err := service.NewProvisioner(reg).EnsureClass(ctx, testIssuer, "plain")
	require.NoError(t, err)
	got, err := reg.GetClass(ctx, testIssuer+".plain")
	require.NoError(t, err)
	assert.Equal(t, models.PassClass{ID: testIssuer + ".plain"}, got)
}

func TestEnsureClass_TemplatedClass(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()

	_, err := service.NewProvisioner(reg, service.WithDisplayTemplate(true)).EnsureClass(ctx, testIssuer, "tpl")
	require.NoError(t, err)
	got, err := reg.GetClass(ctx, testIssuer+".tpl")
	require.NoError(t, err)
	require.NotNil(t, got.ClassTemplateInfo)
	assert.Len(t, got.ClassTemplateInfo.CardTemplateOverride.CardRowTemplateInfos, 3)
}

func TestEnsureClass_OtherLookupErrorIsWarning(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	id := testIssuer + ".broken"
	reg.FailGet(id, &service.RegistryError{Code: http.StatusForbidden, Status: "PERMISSION_DENIED", Message: "nope"})

	res, err := service.NewProvisioner(reg).EnsureClass(ctx, testIssuer, "broken")
	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.False(t, res.Created)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "get_class", res.Warnings[0].Op)

	var re *service.RegistryError
	require.ErrorAs(t, res.Warnings[0], &re)
	assert.Equal(t, http.StatusForbidden, re.Code)
	assert.Equal(t, 0, reg.ClassInserts())
}

func TestEnsureClass_TransportErrorIsWarning(t *testing.T) {
	reg := registry.NewMemory()
	boom := errors.New("connection reset")
	reg.FailGet(testIssuer+".net", boom)

	res, err := service.NewProvisioner(reg).EnsureClass(context.Background(), testIssuer, "net")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], boom)
}

func TestEnsureClass_InsertFailureIsWarning(t *testing.T) {
	reg := registry.NewMemory()
	id := testIssuer + ".race"
	reg.FailInsert(id, &service.RegistryError{Code: http.StatusConflict, Status: "ALREADY_EXISTS"})

	res, err := service.NewProvisioner(reg).EnsureClass(context.Background(), testIssuer, "race")
	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.False(t, res.Created)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "insert_class", res.Warnings[0].Op)
}

func TestEnsureClass_RequiresIdentity(t *testing.T) {
	_, err := service.NewProvisioner(registry.NewMemory()).EnsureClass(context.Background(), "", "x")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestEnsureObject(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	p := service.NewProvisioner(reg)
	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "ticket-1", sampleTicket())

	res, err := p.EnsureObject(ctx, testIssuer, obj)
	require.NoError(t, err)
	assert.True(t, res.Created)

	res, err = p.EnsureObject(ctx, testIssuer, obj)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, 1, reg.ObjectInserts())

	_, err = p.EnsureObject(ctx, "999", obj)
	assert.ErrorIs(t, err, service.ErrIssuerMismatch)
}
