package entity

const (
	GroupOption    = "option"
	GroupConfirmed = "confirmed"
)

type GroupRooms struct {
	Single int `json:"single" bson:"single"`
	Twin   int `json:"twin" bson:"twin"`
	Double int `json:"double" bson:"double"`
	Family int `json:"family" bson:"family"`
}

type GroupOptions struct {
	JE       bool `json:"je" bson:"je"`
	DemiJE   bool `json:"demiJe" bson:"demiJe"`
	Dinner   bool `json:"dinner" bson:"dinner"`
	Lunch    bool `json:"lunch" bson:"lunch"`
	Pause    bool `json:"pause" bson:"pause"`
	RoomHire bool `json:"roomHire" bson:"roomHire"`
	Cocktail bool `json:"cocktail" bson:"cocktail"`
}

type InvoiceItem struct {
	ID          string  `json:"id" bson:"id"`
	Date        string  `json:"date,omitempty" bson:"date,omitempty"`
	Time        string  `json:"time,omitempty" bson:"time,omitempty"`
	EndTime     string  `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Location    string  `json:"location,omitempty" bson:"location,omitempty"`
	Description string  `json:"description" bson:"description"`
	Setup       string  `json:"setup,omitempty" bson:"setup,omitempty"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	VatRate     float64 `json:"vatRate" bson:"vatRate"`
	CatalogID   string  `json:"catalogId,omitempty" bson:"catalogId,omitempty"`
}

type PaymentSchedule struct {
	ID         string  `json:"id" bson:"id"`
	Label      string  `json:"label" bson:"label"`
	Percentage float64 `json:"percentage" bson:"percentage"`
	DueDate    string  `json:"dueDate" bson:"dueDate"`
	Paid       bool    `json:"paid" bson:"paid"`
}

// Group is the default kind of the shared groups collection: anything
// without a client marker or a lead id prefix classifies as a group.
type Group struct {
	ID              string            `json:"id" bson:"id" validate:"required"`
	Name            string            `json:"name" bson:"name" validate:"required"`
	ClientID        string            `json:"clientId,omitempty" bson:"clientId,omitempty"`
	Category        string            `json:"category" bson:"category"`
	Status          string            `json:"status" bson:"status"`
	StartDate       string            `json:"startDate" bson:"startDate"`
	EndDate         string            `json:"endDate" bson:"endDate"`
	Nights          int               `json:"nights" bson:"nights"`
	Pax             int               `json:"pax" bson:"pax"`
	Rooms           GroupRooms        `json:"rooms" bson:"rooms"`
	Options         GroupOptions      `json:"options" bson:"options"`
	Note            string            `json:"note,omitempty" bson:"note,omitempty"`
	RMContactID     string            `json:"rmContactId,omitempty" bson:"rmContactId,omitempty"`
	InvoiceItems    []InvoiceItem     `json:"invoiceItems,omitempty" bson:"invoiceItems,omitempty"`
	PaymentSchedule []PaymentSchedule `json:"paymentSchedule,omitempty" bson:"paymentSchedule,omitempty"`
	CreatedAt       string            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

const (
	LeadNew        = "nouveau"
	LeadInProgress = "en_cours"
	LeadValidated  = "valide"
	LeadLost       = "perdu"
)

type LeadChecklist struct {
	RoomSetup   bool `json:"roomSetup" bson:"roomSetup"`
	Menu        bool `json:"menu" bson:"menu"`
	RoomingList bool `json:"roomingList" bson:"roomingList"`
}

type Lead struct {
	ID          string        `json:"id" bson:"id" validate:"required"`
	GroupName   string        `json:"groupName" bson:"groupName"`
	ContactName string        `json:"contactName" bson:"contactName"`
	Email       string        `json:"email" bson:"email" validate:"omitempty,email"`
	Phone       string        `json:"phone" bson:"phone"`
	RequestDate string        `json:"requestDate" bson:"requestDate"`
	StartDate   string        `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string        `json:"endDate,omitempty" bson:"endDate,omitempty"`
	EventDate   string        `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	Pax         int           `json:"pax" bson:"pax"`
	Note        string        `json:"note" bson:"note"`
	Status      string        `json:"status" bson:"status"`
	Checklist   LeadChecklist `json:"checklist" bson:"checklist"`
	OwnerID     string        `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
}

type Client struct {
	ID          string `json:"id" bson:"id" validate:"required"`
	TypeDoc     string `json:"type_doc" bson:"type_doc"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Type        string `json:"type" bson:"type"`
	Email       string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" bson:"phone"`
	Address     string `json:"address" bson:"address"`
	Siret       string `json:"siret,omitempty" bson:"siret,omitempty"`
	CompanyName string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Vat         string `json:"vat,omitempty" bson:"vat,omitempty"`
	Notes       string `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
}

const (
	InboxToProcess = "to_process"
	InboxProcessed = "processed"
	InboxArchived  = "archived"
)

type InboxItem struct {
	ID             string `json:"id" bson:"id" validate:"required"`
	ContactName    string `json:"contactName" bson:"contactName"`
	CompanyName    string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Email          string `json:"email" bson:"email"`
	Phone          string `json:"phone" bson:"phone"`
	RequestDate    string `json:"requestDate" bson:"requestDate"`
	Source         string `json:"source" bson:"source"`
	Status         string `json:"status" bson:"status"`
	EventStartDate string `json:"eventStartDate,omitempty" bson:"eventStartDate,omitempty"`
	EventEndDate   string `json:"eventEndDate,omitempty" bson:"eventEndDate,omitempty"`
	Note           string `json:"note,omitempty" bson:"note,omitempty"`
	QuoteSent      bool   `json:"quoteSent" bson:"quoteSent"`
	LastFollowUp   string `json:"lastFollowUp,omitempty" bson:"lastFollowUp,omitempty"`
}
