package models

// Ticket — данные билета от вызывающей стороны. Пустые значения не валидируются.
type Ticket struct {
	QRCode          string `json:"qr_code"`
	Title           string `json:"title"`
	Header          string `json:"header"`
	Subheader       string `json:"subheader"`
	BackgroundColor string `json:"background_color"`
	LogoURI         string `json:"logo_uri"`
	LogoDescription string `json:"logo_description"`

	NameLabel       string `json:"name_label"`
	Name            string `json:"name"`
	AssociatedLabel string `json:"associated_label"`
	Associated      string `json:"associated"`
	BenchLabel      string `json:"bench_label"`
	Bench           string `json:"bench"`
	GateLabel       string `json:"gate_label"`
	Gate            string `json:"gate"`
	SectionLabel    string `json:"section_label"`
	Section         string `json:"section"`
	FloorLabel      string `json:"floor_label"`
	Floor           string `json:"floor"`
	RowLabel        string `json:"row_label"`
	Row             string `json:"row"`
	SeatLabel       string `json:"seat_label"`
	Seat            string `json:"seat"`
}

// Идентификаторы текстовых модулей билета, порядок фиксирован
const (
	ModuleName       = "nome"
	ModuleAssociated = "socio"
	ModuleBench      = "bancada"
	ModuleGate       = "porta"
	ModuleSection    = "sector"
	ModuleFloor      = "piso"
	ModuleRow        = "fila"
	ModuleSeat       = "lugar"
)

// TicketModuleIDs — порядок текстовых модулей в объекте
var TicketModuleIDs = []string{
	ModuleName, ModuleAssociated, ModuleBench, ModuleGate,
	ModuleSection, ModuleFloor, ModuleRow, ModuleSeat,
}
