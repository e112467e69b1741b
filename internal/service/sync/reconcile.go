package sync

import (
	"log/slog"

	"HotelOS/entity"
	"HotelOS/internal/classify"
)

// reconcile replaces the view model slices of every kind classified out of
// one snapshot. Each delivery is authoritative and complete for its
// collection: replacement is wholesale, never field-by-field. Kinds that
// only receive local edits (chat channels, laundry, the F&B catalog data)
// have no subscription, so no snapshot can ever clobber them.
func (s *Syncer) reconcile(collection string, docs []entity.Document) {
	switch collection {
	case entity.RoomsCollection:
		rooms, dropped := classify.Rooms(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.Rooms = rooms })
		s.notify(KindRooms)

	case entity.MaintenanceCollection:
		buckets, dropped := classify.Maintenance(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) {
			vm.Tickets = buckets.Tickets
			vm.Contracts = buckets.Contracts
		})
		s.notify(KindMaintenance)

	case entity.InventoryCollection:
		inventory, dropped := classify.Inventory(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.Inventory = inventory })
		s.notify(KindInventory)

	case entity.ReceptionCollection:
		buckets, dropped := classify.Reception(docs)
		s.logDropped(collection, dropped)
		var prevLogs []entity.LogEntry
		s.replace(func(vm *ViewModel) {
			prevLogs = vm.Logs
			vm.Logs = buckets.Logs
			vm.Wakeups = buckets.Wakeups
			vm.Taxis = buckets.Taxis
			vm.LostItems = buckets.LostItems
		})
		s.alertUrgentLogs(prevLogs, buckets.Logs)
		s.notify(KindReception)

	case entity.GroupsCollection:
		buckets, dropped := classify.Groups(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) {
			vm.Groups = buckets.Groups
			vm.Leads = buckets.Leads
			// An empty client bucket keeps the cached client list, the
			// way the original dashboard behaved.
			if len(buckets.Clients) > 0 {
				vm.Clients = buckets.Clients
			}
		})
		s.notify(KindGroups)

	case entity.SpaCollection:
		requests, dropped := classify.Spa(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.SpaRequests = requests })
		s.notify(KindSpa)

	case entity.TasksCollection:
		tasks, dropped := classify.Tasks(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.Todos = tasks })
		s.notify(KindTasks)

	case entity.AgendaCollection:
		events, dropped := classify.Events(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.Events = events })
		s.notify(KindAgenda)

	case entity.ContactsCollection:
		contacts, dropped := classify.Contacts(docs)
		s.logDropped(collection, dropped)
		s.replace(func(vm *ViewModel) { vm.Contacts = contacts })
		s.notify(KindContacts)

	default:
		s.log.Warn("snapshot for unknown collection ignored", slog.String("collection", collection))
	}
}
