// Package classify is the single authority for deciding which entity kind
// a raw document from a shared collection belongs to. Discriminators are
// never checked anywhere else: field presence for maintenance, id prefixes
// for reception, an explicit type marker plus id prefix for groups.
//
// Every function is pure: deterministic, order-preserving within each
// output bucket, no mutation of the input. Documents matching no
// discriminator are dropped from every bucket; the counts are returned so
// the caller can log them.
package classify

import (
	"HotelOS/entity"
)

type MaintenanceBuckets struct {
	Tickets   []entity.MaintenanceTicket
	Contracts []entity.MaintenanceContract
}

type ReceptionBuckets struct {
	Logs      []entity.LogEntry
	Wakeups   []entity.WakeUpCall
	Taxis     []entity.TaxiBooking
	LostItems []entity.LostItem
}

type GroupBuckets struct {
	Groups  []entity.Group
	Leads   []entity.Lead
	Clients []entity.Client
}

// Maintenance partitions the maintenance collection: a document with a
// non-empty providerName is a contract, everything else is a ticket.
func Maintenance(docs []entity.Document) (MaintenanceBuckets, int) {
	var out MaintenanceBuckets
	dropped := 0
	for _, doc := range dedupe(docs) {
		if doc.StringField("providerName") != "" {
			var contract entity.MaintenanceContract
			if err := entity.Decode(doc, &contract); err != nil {
				dropped++
				continue
			}
			out.Contracts = append(out.Contracts, contract)
			continue
		}
		var ticket entity.MaintenanceTicket
		if err := entity.Decode(doc, &ticket); err != nil {
			dropped++
			continue
		}
		out.Tickets = append(out.Tickets, ticket)
	}
	return out, dropped
}

// Reception partitions the reception collection by id prefix. A document
// whose id matches none of the four declared prefixes lands in no bucket.
func Reception(docs []entity.Document) (ReceptionBuckets, int) {
	var out ReceptionBuckets
	dropped := 0
	for _, doc := range dedupe(docs) {
		switch {
		case doc.HasPrefix(entity.PrefixLog):
			var log entity.LogEntry
			if err := entity.Decode(doc, &log); err == nil {
				out.Logs = append(out.Logs, log)
				continue
			}
		case doc.HasPrefix(entity.PrefixWakeUp):
			var wk entity.WakeUpCall
			if err := entity.Decode(doc, &wk); err == nil {
				out.Wakeups = append(out.Wakeups, wk)
				continue
			}
		case doc.HasPrefix(entity.PrefixTaxi):
			var tx entity.TaxiBooking
			if err := entity.Decode(doc, &tx); err == nil {
				out.Taxis = append(out.Taxis, tx)
				continue
			}
		case doc.HasPrefix(entity.PrefixLostItem):
			var li entity.LostItem
			if err := entity.Decode(doc, &li); err == nil {
				out.LostItems = append(out.LostItems, li)
				continue
			}
		}
		dropped++
	}
	return out, dropped
}

// Groups partitions the groups collection: the type_doc marker wins, then
// the lead id prefix, and everything left defaults to a group.
func Groups(docs []entity.Document) (GroupBuckets, int) {
	var out GroupBuckets
	dropped := 0
	for _, doc := range dedupe(docs) {
		switch {
		case doc.StringField("type_doc") == entity.TypeDocClient:
			var client entity.Client
			if err := entity.Decode(doc, &client); err == nil {
				out.Clients = append(out.Clients, client)
				continue
			}
		case doc.HasPrefix(entity.PrefixLead):
			var lead entity.Lead
			if err := entity.Decode(doc, &lead); err == nil {
				out.Leads = append(out.Leads, lead)
				continue
			}
		default:
			var group entity.Group
			if err := entity.Decode(doc, &group); err == nil {
				out.Groups = append(out.Groups, group)
				continue
			}
		}
		dropped++
	}
	return out, dropped
}

// Inventory folds the inventory collection into a monthId-keyed map. Two
// documents with the same monthId collapse to one, last write wins.
func Inventory(docs []entity.Document) (map[string]entity.MonthlyInventory, int) {
	out := make(map[string]entity.MonthlyInventory, len(docs))
	dropped := 0
	for _, doc := range docs {
		var inv entity.MonthlyInventory
		if err := entity.Decode(doc, &inv); err != nil || inv.MonthID == "" {
			dropped++
			continue
		}
		out[inv.MonthID] = inv
	}
	return out, dropped
}

func Rooms(docs []entity.Document) ([]entity.Room, int) {
	return decodeAll[entity.Room](docs)
}

func Spa(docs []entity.Document) ([]entity.SpaRequest, int) {
	return decodeAll[entity.SpaRequest](docs)
}

func Tasks(docs []entity.Document) ([]entity.Task, int) {
	return decodeAll[entity.Task](docs)
}

// Events also normalizes the start value: the entity codec accepts native
// datetimes, RFC3339 strings and the epoch-seconds wrapper.
func Events(docs []entity.Document) ([]entity.CalendarEvent, int) {
	return decodeAll[entity.CalendarEvent](docs)
}

func Contacts(docs []entity.Document) ([]entity.Contact, int) {
	return decodeAll[entity.Contact](docs)
}

func decodeAll[T any](docs []entity.Document) ([]T, int) {
	out := make([]T, 0, len(docs))
	dropped := 0
	for _, doc := range dedupe(docs) {
		var v T
		if err := entity.Decode(doc, &v); err != nil {
			dropped++
			continue
		}
		out = append(out, v)
	}
	return out, dropped
}

// dedupe enforces id uniqueness inside one snapshot: the document keeps
// the position of its first occurrence and the content of its last.
// Documents without an id pass through untouched.
func dedupe(docs []entity.Document) []entity.Document {
	out := make([]entity.Document, 0, len(docs))
	index := make(map[string]int, len(docs))
	for _, doc := range docs {
		id := doc.ID()
		if id == "" {
			out = append(out, doc)
			continue
		}
		if at, seen := index[id]; seen {
			out[at] = doc
			continue
		}
		index[id] = len(out)
		out = append(out, doc)
	}
	return out
}
