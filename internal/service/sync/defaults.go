package sync

import (
	"HotelOS/entity"
	"HotelOS/internal/cache"
)

// loadInitial seeds the view model from the local cache, falling back to
// the built-in defaults kind by kind. This is what the dashboard shows
// until remote snapshots arrive, and the only state there is for kinds
// with no live subscription.
func loadInitial(store *cache.Store) ViewModel {
	return ViewModel{
		Rooms:         cache.LoadOr(store, cache.KeyRooms, DefaultRooms()),
		LaundryIssues: cache.LoadOr(store, cache.KeyLaundry, []entity.LaundryIssue{}),

		Tickets:   cache.LoadOr(store, cache.KeyTickets, []entity.MaintenanceTicket{}),
		Contracts: cache.LoadOr(store, cache.KeyContracts, []entity.MaintenanceContract{}),

		Inventory: cache.LoadOr(store, cache.KeyInventory, map[string]entity.MonthlyInventory{}),

		Logs:      cache.LoadOr(store, cache.KeyLogs, []entity.LogEntry{}),
		Wakeups:   cache.LoadOr(store, cache.KeyWakeups, []entity.WakeUpCall{}),
		Taxis:     cache.LoadOr(store, cache.KeyTaxis, []entity.TaxiBooking{}),
		LostItems: cache.LoadOr(store, cache.KeyLostItems, []entity.LostItem{}),

		Groups:  cache.LoadOr(store, cache.KeyGroups, []entity.Group{}),
		Leads:   cache.LoadOr(store, cache.KeyLeads, []entity.Lead{}),
		Clients: cache.LoadOr(store, cache.KeyClients, []entity.Client{}),
		Inbox:   cache.LoadOr(store, cache.KeyInbox, []entity.InboxItem{}),

		SpaRequests: cache.LoadOr(store, cache.KeySpaRequests, []entity.SpaRequest{}),

		Todos:    cache.LoadOr(store, cache.KeyTodos, []entity.Task{}),
		Events:   cache.LoadOr(store, cache.KeyEvents, []entity.CalendarEvent{}),
		Contacts: cache.LoadOr(store, cache.KeyContacts, []entity.Contact{}),

		Channels: cache.LoadOr(store, cache.KeyChannels, DefaultChannels()),

		Recipes:         cache.LoadOr(store, cache.KeyRecipes, []entity.Recipe{}),
		RatioItems:      cache.LoadOr(store, cache.KeyRatioItems, []entity.RatioItem{}),
		RatioCategories: cache.LoadOr(store, cache.KeyRatioCats, DefaultRatioCategories()),
		Catalog:         cache.LoadOr(store, cache.KeyCatalog, []entity.CatalogItem{}),
		Venues:          cache.LoadOr(store, cache.KeyVenues, DefaultVenues()),
		BusinessConfig:  cache.LoadOr(store, cache.KeyBusinessConfig, entity.BusinessConfig{}),
	}
}

func DefaultRooms() []entity.Room {
	rooms := make([]entity.Room, 0, 12)
	numbers := []string{
		"101", "102", "103", "104",
		"201", "202", "203", "204",
		"301", "302", "303", "304",
	}
	for _, number := range numbers {
		rooms = append(rooms, entity.Room{
			ID:          "room-" + number,
			Number:      number,
			Floor:       int(number[0] - '0'),
			Type:        "Double",
			StatusFront: entity.RoomFrontVacant,
			StatusHK:    entity.RoomHKReady,
		})
	}
	return rooms
}

func DefaultChannels() []entity.ChatChannel {
	return []entity.ChatChannel{
		{
			ID:           "ch-general",
			Type:         entity.ChannelGroup,
			Name:         "Général",
			Participants: []string{},
			Messages:     []entity.ChatMessage{},
		},
		{
			ID:           "ch-reception",
			Type:         entity.ChannelGroup,
			Name:         "Réception",
			Participants: []string{},
			Messages:     []entity.ChatMessage{},
		},
		{
			ID:           "ch-housekeeping",
			Type:         entity.ChannelGroup,
			Name:         "Housekeeping",
			Participants: []string{},
			Messages:     []entity.ChatMessage{},
		},
	}
}

func DefaultVenues() []entity.Venue {
	return []entity.Venue{
		{ID: "venue-1", Name: "Salon Riviera", Capacity: 80, Type: "Séminaire"},
		{ID: "venue-2", Name: "Salle Horizon", Capacity: 140, Type: "Banquet"},
	}
}

func DefaultRatioCategories() []string {
	return []string{"Cuisine", "Petit Déjeuner", "Boissons sans alcool", "Boissons avec alcool"}
}
