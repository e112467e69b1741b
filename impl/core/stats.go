package core

import (
	"fmt"

	"HotelOS/entity"
	"HotelOS/internal/service/access"
)

// Stats is role-gated: managers and admins only.
func (c *Core) Stats(user *entity.UserProfile) (*entity.StatsOverview, error) {
	if c.syncer == nil {
		return nil, fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapStatistics); err != nil {
		return nil, err
	}
	return c.overview(), nil
}

func (c *Core) overview() *entity.StatsOverview {
	v := c.syncer.View()
	s := &entity.StatsOverview{
		RoomsTotal: len(v.Rooms),
		Groups:     len(v.Groups),
		Leads:      len(v.Leads),
		Clients:    len(v.Clients),
	}
	for _, r := range v.Rooms {
		if r.StatusHK == entity.RoomHKReady {
			s.RoomsReady++
		}
		if r.StatusHK == entity.RoomHKNotStarted {
			s.RoomsToClean++
		}
		switch r.StatusFront {
		case entity.RoomFrontArrival:
			s.RoomsArrival++
		case entity.RoomFrontDeparture:
			s.RoomsDeparture++
		}
	}
	for _, t := range v.Tickets {
		if t.Status == entity.TicketResolved {
			s.TicketsResolved++
		} else {
			s.TicketsOpen++
		}
	}
	for _, ct := range v.Contracts {
		if ct.Status == entity.ContractActive {
			s.ContractsActive++
		}
	}
	for _, sr := range v.SpaRequests {
		switch sr.Status {
		case entity.SpaPending:
			s.SpaPending++
		case entity.SpaConfirmed:
			s.SpaConfirmed++
		case entity.SpaRefused:
			s.SpaRefused++
		}
	}
	for _, t := range v.Todos {
		if t.Done {
			s.TasksDone++
		} else {
			s.TasksOpen++
		}
	}
	return s
}

// StatusReport is the plain-text summary the telegram bot sends to the
// admin chat on /status.
func (c *Core) StatusReport() string {
	if c.syncer == nil {
		return "state sync not available"
	}
	s := c.overview()
	return fmt.Sprintf(
		"Rooms: %d total, %d ready, %d to clean, %d arrivals, %d departures\n"+
			"Maintenance: %d open tickets, %d active contracts\n"+
			"Spa: %d pending\n"+
			"CRM: %d groups, %d leads, %d clients\n"+
			"Tasks: %d open, %d done",
		s.RoomsTotal, s.RoomsReady, s.RoomsToClean, s.RoomsArrival, s.RoomsDeparture,
		s.TicketsOpen, s.ContractsActive,
		s.SpaPending,
		s.Groups, s.Leads, s.Clients,
		s.TasksOpen, s.TasksDone,
	)
}
