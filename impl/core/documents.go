package core

import (
	"context"
	"fmt"

	"HotelOS/entity"
	"HotelOS/internal/service/access"
)

// DashboardView returns the slices of the current view the user is
// allowed to see. Areas the user cannot access are simply absent.
func (c *Core) DashboardView(user *entity.UserProfile) (map[string]any, error) {
	if c.syncer == nil {
		return nil, fmt.Errorf("state sync not available")
	}
	if user == nil {
		return nil, &access.DeniedError{Capability: access.CapSharedData, Reason: "Accès restreint."}
	}

	v := c.syncer.View()
	out := map[string]any{
		"todos":          v.Todos,
		"businessConfig": v.BusinessConfig,
	}
	if access.Can(user, access.CapHousekeeping) {
		out["rooms"] = v.Rooms
		out["laundryIssues"] = v.LaundryIssues
	}
	if access.Can(user, access.CapMaintenance) {
		out["tickets"] = v.Tickets
		out["contracts"] = v.Contracts
	}
	if access.Can(user, access.CapFnb) {
		out["inventory"] = v.Inventory
		out["recipes"] = v.Recipes
		out["ratioItems"] = v.RatioItems
		out["ratioCategories"] = v.RatioCategories
	}
	if access.Can(user, access.CapReception) {
		out["logs"] = v.Logs
		out["wakeups"] = v.Wakeups
		out["taxis"] = v.Taxis
		out["lostItems"] = v.LostItems
	}
	if access.Can(user, access.CapCRM) {
		out["groups"] = v.Groups
		out["leads"] = v.Leads
		out["inbox"] = v.Inbox
	}
	if access.Can(user, access.CapClientDatabase) {
		out["clients"] = v.Clients
	}
	if access.Can(user, access.CapSpa) {
		out["spaRequests"] = v.SpaRequests
	}
	if access.Can(user, access.CapAgenda) {
		out["events"] = v.Events
	}
	if access.Can(user, access.CapMessaging) {
		out["channels"] = v.Channels
	}
	if access.Can(user, access.CapSharedData) {
		out["contacts"] = v.Contacts
		out["catalog"] = v.Catalog
		out["venues"] = v.Venues
	}
	return out, nil
}

// SaveDocument gates and persists a single document. The coordinator
// stamps ownership on user-scoped collections; the change stream brings
// the write back into the view.
func (c *Core) SaveDocument(ctx context.Context, user *entity.UserProfile, collection string, doc entity.Document) error {
	if c.coordinator == nil {
		return fmt.Errorf("persistence not available")
	}
	if err := access.CheckCollection(user, collection); err != nil {
		return err
	}
	return c.coordinator.Write(ctx, collection, user.UID, doc)
}

// SaveDocuments persists a batch. Failures are per-document; the batch
// never aborts early.
func (c *Core) SaveDocuments(ctx context.Context, user *entity.UserProfile, collection string, docs []entity.Document) []error {
	if c.coordinator == nil {
		return []error{fmt.Errorf("persistence not available")}
	}
	if err := access.CheckCollection(user, collection); err != nil {
		return []error{err}
	}
	return c.coordinator.WriteAll(ctx, collection, user.UID, docs)
}

// DeleteDocument gates and removes a document by id.
func (c *Core) DeleteDocument(ctx context.Context, user *entity.UserProfile, collection, id string) error {
	if c.coordinator == nil {
		return fmt.Errorf("persistence not available")
	}
	if err := access.CheckCollection(user, collection); err != nil {
		return err
	}
	return c.coordinator.Remove(ctx, collection, id)
}
