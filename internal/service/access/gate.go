// Package access is the single permission gate: every protected view and
// action checks here before rendering or executing. Denials are not
// errors in the exceptional sense; they carry the specific user-facing
// reason the dashboard shows.
package access

import "HotelOS/entity"

// Capability names, one per feature area, plus the two role-gated areas.
const (
	CapAgenda       = "agenda"
	CapMessaging    = "messaging"
	CapFnb          = "fnb"
	CapHousekeeping = "housekeeping"
	CapMaintenance  = "maintenance"
	CapCRM          = "crm"
	CapReception    = "reception"
	CapSpa          = "spa"
	CapSharedData   = "shared-data"
	CapSettings     = "settings-management"

	CapStatistics     = "statistics"
	CapClientDatabase = "client-database"
)

// DeniedError carries the capability-specific reason shown to the user.
type DeniedError struct {
	Capability string
	Reason     string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

var reasons = map[string]string{
	CapAgenda:         "Accès Agenda restreint.",
	CapMessaging:      "Accès Messagerie restreint.",
	CapFnb:            "Accès F&B restreint.",
	CapHousekeeping:   "Accès Ménage restreint.",
	CapMaintenance:    "Accès Maintenance restreint.",
	CapCRM:            "Accès restreint au CRM.",
	CapReception:      "Accès Réception restreint.",
	CapSpa:            "Accès Spa restreint.",
	CapSharedData:     "Accès restreint.",
	CapSettings:       "Accès restreint aux Administrateurs.",
	CapStatistics:     "Accès restreint aux Managers et Administrateurs.",
	CapClientDatabase: "Accès restreint aux Managers et Administrateurs.",
}

// Can is a pure lookup against the user's permission set and role. It
// never panics; a nil user or an unknown capability resolves to denied.
func Can(user *entity.UserProfile, capability string) bool {
	if user == nil {
		return false
	}
	p := user.Permissions
	switch capability {
	case CapAgenda:
		return p.CanViewAgenda
	case CapMessaging:
		return p.CanViewMessaging
	case CapFnb:
		return p.CanViewFnb
	case CapHousekeeping:
		return p.CanViewHousekeeping
	case CapMaintenance:
		return p.CanViewMaintenance
	case CapCRM:
		return p.CanViewCRM
	case CapReception:
		return p.CanViewReception
	case CapSpa:
		return p.CanViewSpa
	case CapSharedData:
		return p.CanViewSharedData
	case CapSettings:
		return p.CanManageSettings
	case CapStatistics, CapClientDatabase:
		return user.IsManagement()
	}
	return false
}

// Check returns nil when allowed, or a *DeniedError with the reason.
func Check(user *entity.UserProfile, capability string) error {
	if Can(user, capability) {
		return nil
	}
	reason, ok := reasons[capability]
	if !ok {
		reason = "Accès restreint."
	}
	return &DeniedError{Capability: capability, Reason: reason}
}

// ForCollection maps a remote collection to the capability gating writes
// to it. Personal task lists have no dedicated capability and are open to
// every authenticated user.
func ForCollection(collection string) (string, bool) {
	switch collection {
	case entity.RoomsCollection:
		return CapHousekeeping, true
	case entity.MaintenanceCollection:
		return CapMaintenance, true
	case entity.InventoryCollection:
		return CapFnb, true
	case entity.ReceptionCollection:
		return CapReception, true
	case entity.GroupsCollection:
		return CapCRM, true
	case entity.SpaCollection:
		return CapSpa, true
	case entity.AgendaCollection:
		return CapAgenda, true
	case entity.ContactsCollection:
		return CapSharedData, true
	case entity.TasksCollection:
		return "", false
	}
	return "", false
}

// CheckCollection gates a write against the collection's capability.
func CheckCollection(user *entity.UserProfile, collection string) error {
	if user == nil {
		return &DeniedError{Capability: collection, Reason: "Accès restreint."}
	}
	capability, gated := ForCollection(collection)
	if !gated {
		return nil
	}
	return Check(user, capability)
}
