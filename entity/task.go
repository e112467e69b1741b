package entity

const (
	TaskNotStarted = "Pas commencé"
	TaskInProgress = "En cours"
	TaskDone       = "Terminé"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Attachment struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Type string `json:"type" bson:"type"`
	URL  string `json:"url" bson:"url"`
}

// Task lives in a user-scoped collection: without an ownership stamp it
// never shows up in its owner's snapshots again.
type Task struct {
	ID              string       `json:"id" bson:"id" validate:"required"`
	Text            string       `json:"text" bson:"text" validate:"required"`
	Done            bool         `json:"done" bson:"done"`
	Tag             string       `json:"tag" bson:"tag"`
	Date            string       `json:"date,omitempty" bson:"date,omitempty"`
	Time            string       `json:"time,omitempty" bson:"time,omitempty"`
	Priority        string       `json:"priority,omitempty" bson:"priority,omitempty"`
	Note            string       `json:"note,omitempty" bson:"note,omitempty"`
	LinkedContactID string       `json:"linkedContactId,omitempty" bson:"linkedContactId,omitempty"`
	LinkedGroupID   string       `json:"linkedGroupId,omitempty" bson:"linkedGroupId,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
	OwnerID         string       `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	Status          string       `json:"status" bson:"status"`
}
