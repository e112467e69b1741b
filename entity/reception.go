package entity

const (
	LogInfo      = "info"
	LogImportant = "important"
	LogUrgent    = "urgent"
)

const (
	LogTargetAll          = "all"
	LogTargetManagement   = "management"
	LogTargetHousekeeping = "housekeeping"
	LogTargetMaintenance  = "maintenance"
)

const (
	LogActive   = "active"
	LogArchived = "archived"
)

// LogEntry is a front desk handover note. Its id carries the "log-" prefix
// that routes it out of the shared reception collection.
type LogEntry struct {
	ID        string   `json:"id" bson:"id" validate:"required"`
	Author    string   `json:"author" bson:"author"`
	Message   string   `json:"message" bson:"message" validate:"required"`
	Priority  string   `json:"priority" bson:"priority"`
	Target    string   `json:"target" bson:"target"`
	Status    string   `json:"status" bson:"status"`
	Timestamp string   `json:"timestamp" bson:"timestamp"`
	ReadBy    []string `json:"readBy" bson:"readBy"`
}

type WakeUpCall struct {
	ID         string `json:"id" bson:"id" validate:"required"`
	RoomNumber string `json:"roomNumber" bson:"roomNumber" validate:"required"`
	Time       string `json:"time" bson:"time" validate:"required"`
	Completed  bool   `json:"completed" bson:"completed"`
}

type TaxiBooking struct {
	ID          string `json:"id" bson:"id" validate:"required"`
	GuestName   string `json:"guestName" bson:"guestName"`
	RoomNumber  string `json:"roomNumber,omitempty" bson:"roomNumber,omitempty"`
	Time        string `json:"time" bson:"time"`
	Destination string `json:"destination" bson:"destination"`
	Company     string `json:"company" bson:"company"`
	Completed   bool   `json:"completed" bson:"completed"`
}

const (
	LostItemStored    = "stored"
	LostItemContacted = "contacted"
	LostItemReturned  = "returned"
	LostItemDonated   = "donated"
)

type LostItem struct {
	ID          string `json:"id" bson:"id" validate:"required"`
	Description string `json:"description" bson:"description"`
	Location    string `json:"location" bson:"location"`
	DateFound   string `json:"dateFound" bson:"dateFound"`
	Finder      string `json:"finder" bson:"finder"`
	Status      string `json:"status" bson:"status"`
	PhotoURL    string `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}
