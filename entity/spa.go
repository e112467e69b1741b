package entity

const (
	SpaPending   = "pending"
	SpaConfirmed = "confirmed"
	SpaRefused   = "refused"
)

const (
	SpaRefusalCabinFull       = "complet_cabine"
	SpaRefusalTreatmentFull   = "complet_soin"
	SpaRefusalContraindicated = "contre_indication"
	SpaRefusalCancelled       = "annulation"
	SpaRefusalOther           = "autre"
)

type SpaRequest struct {
	ID            string `json:"id" bson:"id" validate:"required"`
	ClientName    string `json:"clientName" bson:"clientName" validate:"required"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email" bson:"email" validate:"omitempty,email"`
	Date          string `json:"date" bson:"date"`
	Time          string `json:"time" bson:"time"`
	Treatment     string `json:"treatment" bson:"treatment"`
	Status        string `json:"status" bson:"status"`
	RefusalReason string `json:"refusalReason,omitempty" bson:"refusalReason,omitempty"`
	CreatedAt     string `json:"createdAt" bson:"createdAt"`
}
