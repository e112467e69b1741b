package core

import (
	"fmt"

	"HotelOS/entity"
	"HotelOS/internal/service/access"
)

// Settings and catalog data are cache-backed, not subscribed; every
// mutation here replaces the slice and persists it.

func (c *Core) UpdateBusinessConfig(user *entity.UserProfile, conf entity.BusinessConfig) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapSettings); err != nil {
		return err
	}
	c.syncer.SetBusinessConfig(conf)
	return nil
}

func (c *Core) UpdateLaundryIssues(user *entity.UserProfile, issues []entity.LaundryIssue) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapHousekeeping); err != nil {
		return err
	}
	c.syncer.SetLaundryIssues(issues)
	return nil
}

func (c *Core) UpdateRecipes(user *entity.UserProfile, recipes []entity.Recipe) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapFnb); err != nil {
		return err
	}
	c.syncer.SetRecipes(recipes)
	return nil
}

func (c *Core) UpdateRatioItems(user *entity.UserProfile, items []entity.RatioItem) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapFnb); err != nil {
		return err
	}
	c.syncer.SetRatioItems(items)
	return nil
}

func (c *Core) UpdateRatioCategories(user *entity.UserProfile, categories []string) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapFnb); err != nil {
		return err
	}
	c.syncer.SetRatioCategories(categories)
	return nil
}

func (c *Core) UpdateCatalog(user *entity.UserProfile, items []entity.CatalogItem) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapSettings); err != nil {
		return err
	}
	c.syncer.SetCatalog(items)
	return nil
}

func (c *Core) UpdateVenues(user *entity.UserProfile, venues []entity.Venue) error {
	if c.syncer == nil {
		return fmt.Errorf("state sync not available")
	}
	if err := access.Check(user, access.CapSettings); err != nil {
		return err
	}
	c.syncer.SetVenues(venues)
	return nil
}
