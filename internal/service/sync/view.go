package sync

import "HotelOS/entity"

// ViewModel is the in-memory state the dashboard renders from. Slices are
// replaced wholesale, never mutated in place, so a copy of the struct is
// always safe to read while the reconciler keeps running.
type ViewModel struct {
	Rooms         []entity.Room
	LaundryIssues []entity.LaundryIssue

	Tickets   []entity.MaintenanceTicket
	Contracts []entity.MaintenanceContract

	Inventory map[string]entity.MonthlyInventory

	Logs      []entity.LogEntry
	Wakeups   []entity.WakeUpCall
	Taxis     []entity.TaxiBooking
	LostItems []entity.LostItem

	Groups  []entity.Group
	Leads   []entity.Lead
	Clients []entity.Client
	Inbox   []entity.InboxItem

	SpaRequests []entity.SpaRequest

	Todos    []entity.Task
	Events   []entity.CalendarEvent
	Contacts []entity.Contact

	Channels []entity.ChatChannel

	Recipes         []entity.Recipe
	RatioItems      []entity.RatioItem
	RatioCategories []string
	Catalog         []entity.CatalogItem
	Venues          []entity.Venue
	BusinessConfig  entity.BusinessConfig
}
