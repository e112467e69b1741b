package entity

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
)

const (
	ContractActive     = "active"
	ContractRenew      = "renew"
	ContractTerminated = "terminated"
)

type MaintenanceTicket struct {
	ID          string `json:"id" bson:"id" validate:"required"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description" bson:"description" validate:"required"`
	Status      string `json:"status" bson:"status"`
	CreatedAt   string `json:"createdAt" bson:"createdAt"`
	PhotoURL    string `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}

type ContactDetails struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// MaintenanceContract shares the maintenance collection with tickets; a
// non-empty ProviderName is what makes a document a contract.
type MaintenanceContract struct {
	ID               string          `json:"id" bson:"id" validate:"required"`
	ProviderName     string          `json:"providerName" bson:"providerName" validate:"required"`
	Subject          string          `json:"subject" bson:"subject"`
	ContactPhone     string          `json:"contactPhone" bson:"contactPhone"`
	ContactEmail     string          `json:"contactEmail" bson:"contactEmail" validate:"omitempty,email"`
	Status           string          `json:"status" bson:"status"`
	LastIntervention string          `json:"lastIntervention,omitempty" bson:"lastIntervention,omitempty"`
	NextIntervention string          `json:"nextIntervention,omitempty" bson:"nextIntervention,omitempty"`
	Address          string          `json:"address,omitempty" bson:"address,omitempty"`
	Website          string          `json:"website,omitempty" bson:"website,omitempty"`
	Siret            string          `json:"siret,omitempty" bson:"siret,omitempty"`
	SalesContact     *ContactDetails `json:"salesContact,omitempty" bson:"salesContact,omitempty"`
	TechnicalContact *ContactDetails `json:"technicalContact,omitempty" bson:"technicalContact,omitempty"`
	StartDate        string          `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate          string          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Frequency        string          `json:"frequency,omitempty" bson:"frequency,omitempty"`
	AnnualCost       float64         `json:"annualCost,omitempty" bson:"annualCost,omitempty"`
}
