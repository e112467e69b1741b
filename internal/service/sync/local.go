package sync

import (
	"log/slog"
	"slices"

	"HotelOS/entity"
	"HotelOS/internal/cache"
	"HotelOS/internal/lib/sl"
)

// Local mutations for the kinds that never acquire a live subscription.
// They flow through the same event queue as snapshots, so a mutation and a
// snapshot can never interleave, and they persist straight to the local
// cache, which is the sole durable store for these kinds.

// AppendChatMessage appends to a channel, re-derives its summary fields
// and restores the descending lastUpdate channel order.
func (s *Syncer) AppendChatMessage(channelID string, msg entity.ChatMessage) bool {
	found := false
	s.Apply(func(vm *ViewModel) {
		channels := slices.Clone(vm.Channels)
		for i, ch := range channels {
			if ch.ID != channelID {
				continue
			}
			ch.Messages = slices.Clone(ch.Messages)
			ch.Append(msg)
			channels[i] = ch
			found = true
			break
		}
		if !found {
			return
		}
		entity.SortChannels(channels)
		vm.Channels = channels
	})
	if found {
		s.persist(cache.KeyChannels, s.View().Channels)
		s.notify(KindMessaging)
	}
	return found
}

// MarkChannelRead zeroes a channel's unread counter. A miss leaves the
// cache and the feed untouched.
func (s *Syncer) MarkChannelRead(channelID string) bool {
	found := false
	s.Apply(func(vm *ViewModel) {
		channels := slices.Clone(vm.Channels)
		for i, ch := range channels {
			if ch.ID == channelID {
				ch.UnreadCount = 0
				channels[i] = ch
				found = true
				break
			}
		}
		if found {
			vm.Channels = channels
		}
	})
	if found {
		s.persist(cache.KeyChannels, s.View().Channels)
		s.notify(KindMessaging)
	}
	return found
}

func (s *Syncer) SetLaundryIssues(issues []entity.LaundryIssue) {
	s.Apply(func(vm *ViewModel) { vm.LaundryIssues = issues })
	s.persist(cache.KeyLaundry, issues)
	s.notify(KindLaundry)
}

func (s *Syncer) SetRecipes(recipes []entity.Recipe) {
	s.Apply(func(vm *ViewModel) { vm.Recipes = recipes })
	s.persist(cache.KeyRecipes, recipes)
	s.notify(KindCatalog)
}

func (s *Syncer) SetRatioItems(items []entity.RatioItem) {
	s.Apply(func(vm *ViewModel) { vm.RatioItems = items })
	s.persist(cache.KeyRatioItems, items)
	s.notify(KindCatalog)
}

func (s *Syncer) SetRatioCategories(categories []string) {
	s.Apply(func(vm *ViewModel) { vm.RatioCategories = categories })
	s.persist(cache.KeyRatioCats, categories)
	s.notify(KindCatalog)
}

func (s *Syncer) SetCatalog(items []entity.CatalogItem) {
	s.Apply(func(vm *ViewModel) { vm.Catalog = items })
	s.persist(cache.KeyCatalog, items)
	s.notify(KindCatalog)
}

func (s *Syncer) SetVenues(venues []entity.Venue) {
	s.Apply(func(vm *ViewModel) { vm.Venues = venues })
	s.persist(cache.KeyVenues, venues)
	s.notify(KindCatalog)
}

func (s *Syncer) SetBusinessConfig(conf entity.BusinessConfig) {
	s.Apply(func(vm *ViewModel) { vm.BusinessConfig = conf })
	s.persist(cache.KeyBusinessConfig, conf)
	s.notify(KindCatalog)
}

func (s *Syncer) persist(key string, v any) {
	if err := s.cache.Save(key, v); err != nil {
		s.log.Warn("cache save failed", slog.String("key", key), sl.Err(err))
	}
}
