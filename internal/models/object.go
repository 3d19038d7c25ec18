package models

// PassObject — экземпляр пропуска (genericObject).
// Незаполненные поля не попадают в JSON, кроме подписей и значений текстовых блоков.
type PassObject struct {
	ID                 string           `json:"id,omitempty"`
	ClassID            string           `json:"classId,omitempty"`
	State              PassState        `json:"state,omitempty"`
	Barcode            *Barcode         `json:"barcode,omitempty"`
	CardTitle          *LocalizedString `json:"cardTitle,omitempty"`
	Header             *LocalizedString `json:"header,omitempty"`
	Subheader          *LocalizedString `json:"subheader,omitempty"`
	HexBackgroundColor string           `json:"hexBackgroundColor,omitempty"`
	Logo               *Image           `json:"logo,omitempty"`
	TextModulesData    []TextModuleData `json:"textModulesData,omitempty"`
}

type Barcode struct {
	Type  BarcodeType `json:"type,omitempty"`
	Value string      `json:"value,omitempty"`
}

type LocalizedString struct {
	DefaultValue *TranslatedString `json:"defaultValue,omitempty"`
}

type TranslatedString struct {
	Language string `json:"language,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Localized строит LocalizedString с языком по умолчанию
func Localized(value string) *LocalizedString {
	return &LocalizedString{DefaultValue: &TranslatedString{Language: DefaultLanguage, Value: value}}
}

type Image struct {
	SourceURI          *ImageURI        `json:"sourceUri,omitempty"`
	ContentDescription *LocalizedString `json:"contentDescription,omitempty"`
}

type ImageURI struct {
	URI string `json:"uri,omitempty"`
}

// TextModuleData — строка текстового блока; ID уникален в пределах объекта
// и служит ключом для ссылок из шаблона класса. Пустые header/body сохраняются.
type TextModuleData struct {
	ID     string `json:"id,omitempty"`
	Header string `json:"header"`
	Body   string `json:"body"`
}
