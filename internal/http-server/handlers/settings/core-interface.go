package settings

import "HotelOS/entity"

type Core interface {
	UpdateBusinessConfig(user *entity.UserProfile, conf entity.BusinessConfig) error
	UpdateLaundryIssues(user *entity.UserProfile, issues []entity.LaundryIssue) error
	UpdateRecipes(user *entity.UserProfile, recipes []entity.Recipe) error
	UpdateRatioItems(user *entity.UserProfile, items []entity.RatioItem) error
	UpdateRatioCategories(user *entity.UserProfile, categories []string) error
	UpdateCatalog(user *entity.UserProfile, items []entity.CatalogItem) error
	UpdateVenues(user *entity.UserProfile, venues []entity.Venue) error
}
