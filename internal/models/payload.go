package models

// Ключи полезной нагрузки save-токена по типам объектов
const (
	KindEventTicket = "eventTicketObjects"
	KindFlight      = "flightObjects"
	KindGeneric     = "genericObjects"
	KindGiftCard    = "giftCardObjects"
	KindLoyalty     = "loyaltyObjects"
	KindOffer       = "offerObjects"
	KindTransit     = "transitObjects"
)

// ObjectKinds — все поддерживаемые типы, в порядке выдачи
var ObjectKinds = []string{
	KindEventTicket, KindFlight, KindGeneric, KindGiftCard,
	KindLoyalty, KindOffer, KindTransit,
}

// IsObjectKind сообщает, поддерживается ли ключ типа
func IsObjectKind(kind string) bool {
	for _, k := range ObjectKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// NewObjectsPayload — payload для создания новых классов/объектов при сохранении
type NewObjectsPayload struct {
	GenericClasses []PassClass  `json:"genericClasses,omitempty"`
	GenericObjects []PassObject `json:"genericObjects"`
}

// ObjectStub — ссылка на уже существующий объект
type ObjectStub struct {
	ID      string `json:"id"`
	ClassID string `json:"classId"`
}

// ExistingObjectsPayload — тип объекта -> список ссылок
type ExistingObjectsPayload map[string][]ObjectStub
