package cache

// Cache keys, one per entity kind. The version suffix is the migration
// strategy: bumping it abandons the old entry and falls back to defaults.
const (
	KeyContacts       = "hotelos_contacts_v3"
	KeyTodos          = "hotelos_todos_v3"
	KeyGroups         = "hotelos_groups_v3"
	KeyEvents         = "hotelos_events_v3"
	KeySettings       = "hotelos_settings_v3"
	KeyChannels       = "hotelos_channels_v1"
	KeyBusinessConfig = "hotelos_business_v1"
	KeyCatalog        = "hotelos_catalog_v1"
	KeyVenues         = "hotelos_venues_v1"
	KeyClients        = "hotelos_clients_v1"
	KeyInventory      = "hotelos_inventory_v1"
	KeyRecipes        = "hotelos_recipes_v1"
	KeyRatioItems     = "hotelos_ratio_items_v1"
	KeyRatioCats      = "hotelos_ratio_cats_v1"
	KeyRooms          = "hotelos_rooms_v1"
	KeyLaundry        = "hotelos_laundry_v1"
	KeyTickets        = "hotelos_tickets_v1"
	KeyContracts      = "hotelos_contracts_v1"
	KeyLeads          = "hotelos_leads_v1"
	KeyInbox          = "hotelos_inbox_v1"
	KeyLogs           = "hotelos_logs_v1"
	KeyWakeups        = "hotelos_wakeups_v1"
	KeyTaxis          = "hotelos_taxis_v1"
	KeyLostItems      = "hotelos_lost_items_v1"
	KeySpaRequests    = "hotelos_spa_requests_v1"
)
