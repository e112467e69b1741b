package view

import "HotelOS/entity"

type Core interface {
	DashboardView(user *entity.UserProfile) (map[string]any, error)
}
