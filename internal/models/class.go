package models

// PassClass — шаблон пропуска (genericClass)
type PassClass struct {
	ID                string             `json:"id,omitempty"`
	ClassTemplateInfo *ClassTemplateInfo `json:"classTemplateInfo,omitempty"`
}

type ClassTemplateInfo struct {
	CardTemplateOverride *CardTemplateOverride `json:"cardTemplateOverride,omitempty"`
}

type CardTemplateOverride struct {
	CardRowTemplateInfos []CardRowTemplateInfo `json:"cardRowTemplateInfos,omitempty"`
}

// CardRowTemplateInfo — строка шаблона: задаётся ровно один из OneItem/ThreeItems
type CardRowTemplateInfo struct {
	OneItem    *CardRowOneItem    `json:"oneItem,omitempty"`
	ThreeItems *CardRowThreeItems `json:"threeItems,omitempty"`
}

// Valid проверяет взаимоисключающий вариант строки
func (r CardRowTemplateInfo) Valid() bool {
	return (r.OneItem != nil) != (r.ThreeItems != nil)
}

type CardRowOneItem struct {
	Item *TemplateItem `json:"item,omitempty"`
}

type CardRowThreeItems struct {
	StartItem  *TemplateItem `json:"startItem,omitempty"`
	MiddleItem *TemplateItem `json:"middleItem,omitempty"`
	EndItem    *TemplateItem `json:"endItem,omitempty"`
}

type TemplateItem struct {
	FirstValue  *FieldSelector `json:"firstValue,omitempty"`
	SecondValue *FieldSelector `json:"secondValue,omitempty"`
}

type FieldSelector struct {
	Fields []FieldReference `json:"fields,omitempty"`
}

// FieldReference — путь к значению в данных объекта, разрешается кошельком при отрисовке
type FieldReference struct {
	FieldPath string `json:"fieldPath,omitempty"`
}

// SelectField строит селектор из одного пути
func SelectField(path string) *FieldSelector {
	return &FieldSelector{Fields: []FieldReference{{FieldPath: path}}}
}
