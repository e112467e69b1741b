package entity

// Logical remote collection ids. Shared collections deliver one stream to
// every authenticated user; user collections are filtered by the
// ownership stamp.
const (
	RoomsCollection       = "rooms"
	MaintenanceCollection = "maintenance"
	InventoryCollection   = "inventory"
	ReceptionCollection   = "reception"
	GroupsCollection      = "groups"
	SpaCollection         = "spa"
	TasksCollection       = "tasks"
	AgendaCollection      = "agenda"
	ContactsCollection    = "contacts"
)

func SharedCollections() []string {
	return []string{
		RoomsCollection,
		MaintenanceCollection,
		InventoryCollection,
		ReceptionCollection,
		GroupsCollection,
		SpaCollection,
	}
}

func UserCollections() []string {
	return []string{
		TasksCollection,
		AgendaCollection,
		ContactsCollection,
	}
}

// IsUserScoped reports whether writes to the collection require the
// ownership stamp to stay visible to their author.
func IsUserScoped(collection string) bool {
	switch collection {
	case TasksCollection, AgendaCollection, ContactsCollection:
		return true
	}
	return false
}
