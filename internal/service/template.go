package service

import "github.com/vbncursed/vkr/wallet-service/internal/models"

// Пути полей в шаблоне карточки. Первые адресуют модуль по позиции,
// последние два по id; смешение сохранено как есть.
const (
	FieldFirstModule = "object.payload.genericObjects[0].textModulesData[0].id"
	FieldRow         = "object.textModulesData['" + models.ModuleRow + "']"
	FieldSeat        = "object.textModulesData['" + models.ModuleSeat + "']"
)

// DisplayTemplate — одна строка на один элемент и две строки по три элемента
func DisplayTemplate() *models.ClassTemplateInfo {
	return &models.ClassTemplateInfo{
		CardTemplateOverride: &models.CardTemplateOverride{
			CardRowTemplateInfos: []models.CardRowTemplateInfo{
				{
					OneItem: &models.CardRowOneItem{
						Item: &models.TemplateItem{
							FirstValue:  models.SelectField(FieldFirstModule),
							SecondValue: models.SelectField(FieldFirstModule),
						},
					},
				},
				{
					ThreeItems: &models.CardRowThreeItems{
						StartItem:  &models.TemplateItem{FirstValue: models.SelectField(FieldFirstModule)},
						MiddleItem: &models.TemplateItem{FirstValue: models.SelectField(FieldFirstModule)},
						EndItem:    &models.TemplateItem{FirstValue: models.SelectField(FieldFirstModule)},
					},
				},
				{
					ThreeItems: &models.CardRowThreeItems{
						StartItem:  &models.TemplateItem{FirstValue: models.SelectField(FieldFirstModule)},
						MiddleItem: &models.TemplateItem{FirstValue: models.SelectField(FieldRow)},
						EndItem:    &models.TemplateItem{FirstValue: models.SelectField(FieldSeat)},
					},
				},
			},
		},
	}
}

// NewTemplatedClass — класс с шаблоном отображения
func NewTemplatedClass(id string) models.PassClass {
	return models.PassClass{ID: id, ClassTemplateInfo: DisplayTemplate()}
}
