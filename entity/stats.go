package entity

// StatsOverview is the management dashboard summary, computed on demand
// from the current view.
type StatsOverview struct {
	RoomsTotal     int `json:"roomsTotal"`
	RoomsReady     int `json:"roomsReady"`
	RoomsToClean   int `json:"roomsToClean"`
	RoomsArrival   int `json:"roomsArrival"`
	RoomsDeparture int `json:"roomsDeparture"`

	TicketsOpen     int `json:"ticketsOpen"`
	TicketsResolved int `json:"ticketsResolved"`
	ContractsActive int `json:"contractsActive"`

	SpaPending   int `json:"spaPending"`
	SpaConfirmed int `json:"spaConfirmed"`
	SpaRefused   int `json:"spaRefused"`

	Groups  int `json:"groups"`
	Leads   int `json:"leads"`
	Clients int `json:"clients"`

	TasksDone int `json:"tasksDone"`
	TasksOpen int `json:"tasksOpen"`
}

