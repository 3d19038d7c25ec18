package service

import "github.com/vbncursed/vkr/wallet-service/internal/models"

// BuildObject переносит данные билета в объект пропуска.
// Чистая функция: значения копируются как есть, пустые не проверяются.
func BuildObject(issuerID, classID, objectSuffix string, t models.Ticket) models.PassObject {
	obj := models.PassObject{
		ID:      ResourceID(issuerID, objectSuffix),
		ClassID: classID,
		State:   models.StateActive,
		Barcode: &models.Barcode{
			Type:  models.BarcodeQRCode,
			Value: t.QRCode,
		},
		CardTitle:          models.Localized(t.Title),
		Header:             models.Localized(t.Header),
		Subheader:          models.Localized(t.Subheader),
		HexBackgroundColor: t.BackgroundColor,
		TextModulesData:    ticketModules(t),
	}
	if t.LogoURI != "" {
		obj.Logo = &models.Image{SourceURI: &models.ImageURI{URI: t.LogoURI}}
		if t.LogoDescription != "" {
			obj.Logo.ContentDescription = models.Localized(t.LogoDescription)
		}
	}
	return obj
}

func ticketModules(t models.Ticket) []models.TextModuleData {
	return []models.TextModuleData{
		{ID: models.ModuleName, Header: t.NameLabel, Body: t.Name},
		{ID: models.ModuleAssociated, Header: t.AssociatedLabel, Body: t.Associated},
		{ID: models.ModuleBench, Header: t.BenchLabel, Body: t.Bench},
		{ID: models.ModuleGate, Header: t.GateLabel, Body: t.Gate},
		{ID: models.ModuleSection, Header: t.SectionLabel, Body: t.Section},
		{ID: models.ModuleFloor, Header: t.FloorLabel, Body: t.Floor},
		{ID: models.ModuleRow, Header: t.RowLabel, Body: t.Row},
		{ID: models.ModuleSeat, Header: t.SeatLabel, Body: t.Seat},
	}
}
