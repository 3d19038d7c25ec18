package models

// PassState — состояние экземпляра пропуска в кошельке
type PassState string

const (
	StateActive    PassState = "ACTIVE"
	StateInactive  PassState = "INACTIVE"
	StateExpired   PassState = "EXPIRED"
	StateCompleted PassState = "COMPLETED"
)

// BarcodeType — тип штрихкода на лицевой стороне
type BarcodeType string

const (
	BarcodeQRCode BarcodeType = "QR_CODE"
)

// DefaultLanguage используется для всех локализованных строк объекта
const DefaultLanguage = "en-US"
