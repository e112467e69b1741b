package entity

// Housekeeping status of a room.
const (
	RoomHKNotStarted = "not_started"
	RoomHKInProgress = "in_progress"
	RoomHKReady      = "ready"
)

// Front desk status of a room.
const (
	RoomFrontStayover  = "stayover"
	RoomFrontDeparture = "departure"
	RoomFrontArrival   = "arrival"
	RoomFrontVacant    = "vacant"
)

type Room struct {
	ID          string `json:"id" bson:"id" validate:"required"`
	Number      string `json:"number" bson:"number" validate:"required"`
	Floor       int    `json:"floor" bson:"floor"`
	Type        string `json:"type" bson:"type"`
	StatusFront string `json:"statusFront" bson:"statusFront"`
	StatusHK    string `json:"statusHK" bson:"statusHK"`
}

type LaundryIssue struct {
	ID       string `json:"id" bson:"id" validate:"required"`
	Date     string `json:"date" bson:"date"`
	Type     string `json:"type" bson:"type"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Comment  string `json:"comment" bson:"comment"`
	PhotoURL string `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}
