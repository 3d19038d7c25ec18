package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/wallet-service/internal/models"
	"github.com/vbncursed/vkr/wallet-service/internal/service"
)

func TestBuildObject_Fields(t *testing.T) {
	tk := sampleTicket()
	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "ticket-1", tk)

	assert.Equal(t, testIssuer+".ticket-1", obj.ID)
	assert.Equal(t, testIssuer+".tpl", obj.ClassID)
	assert.Equal(t, models.StateActive, obj.State)
	assert.Equal(t, &models.Barcode{Type: models.BarcodeQRCode, Value: "QR-123"}, obj.Barcode)
	assert.Equal(t, "#c8102e", obj.HexBackgroundColor)

	for _, ls := range []*models.LocalizedString{obj.CardTitle, obj.Header, obj.Subheader} {
		require.NotNil(t, ls)
		assert.Equal(t, "en-US", ls.DefaultValue.Language)
	}
	assert.Equal(t, tk.Title, obj.CardTitle.DefaultValue.Value)
	assert.Equal(t, tk.Header, obj.Header.DefaultValue.Value)
	assert.Equal(t, tk.Subheader, obj.Subheader.DefaultValue.Value)
	assert.Nil(t, obj.Logo)
}

func TestBuildObject_TextModules(t *testing.T) {
	tk := sampleTicket()
	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "ticket-1", tk)

	require.Len(t, obj.TextModulesData, 8)
	want := []models.TextModuleData{
		{ID: "nome", Header: tk.NameLabel, Body: tk.Name},
		{ID: "socio", Header: tk.AssociatedLabel, Body: tk.Associated},
		{ID: "bancada", Header: tk.BenchLabel, Body: tk.Bench},
		{ID: "porta", Header: tk.GateLabel, Body: tk.Gate},
		{ID: "sector", Header: tk.SectionLabel, Body: tk.Section},
		{ID: "piso", Header: tk.FloorLabel, Body: tk.Floor},
		{ID: "fila", Header: tk.RowLabel, Body: tk.Row},
		{ID: "lugar", Header: tk.SeatLabel, Body: tk.Seat},
	}
	assert.Equal(t, want, obj.TextModulesData)

	seen := map[string]bool{}
	for _, m := range obj.TextModulesData {
		assert.False(t, seen[m.ID], "duplicate module id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestBuildObject_BlankValuesPassThrough(t *testing.T) {
	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "blank", models.Ticket{})

	require.Len(t, obj.TextModulesData, 8)
	for i, m := range obj.TextModulesData {
		assert.Equal(t, models.TicketModuleIDs[i], m.ID)
		assert.Empty(t, m.Header)
		assert.Empty(t, m.Body)
	}
	assert.Equal(t, "", obj.Barcode.Value)

	b, err := json.Marshal(obj.TextModulesData)
	require.NoError(t, err)
	var tree []map[string]any
	require.NoError(t, json.Unmarshal(b, &tree))
	for i, m := range tree {
		assert.Equal(t, map[string]any{"id": models.TicketModuleIDs[i], "header": "", "body": ""}, m)
	}
}

func TestBuildObject_BlankSeatKeepsBody(t *testing.T) {
	tk := sampleTicket()
	tk.Seat = ""
	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "ticket-1", tk)

	b, err := json.Marshal(obj.TextModulesData[7])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"lugar","header":"Lugar","body":""}`, string(b))
}

func TestBuildObject_Logo(t *testing.T) {
	tk := sampleTicket()
	tk.LogoURI = "https://example.com/logo.png"
	tk.LogoDescription = "Benfica"

	obj := service.BuildObject(testIssuer, testIssuer+".tpl", "ticket-1", tk)
	require.NotNil(t, obj.Logo)
	assert.Equal(t, tk.LogoURI, obj.Logo.SourceURI.URI)
	assert.Equal(t, "Benfica", obj.Logo.ContentDescription.DefaultValue.Value)
}
