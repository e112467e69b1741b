package stats

import "HotelOS/entity"

type Core interface {
	Stats(user *entity.UserProfile) (*entity.StatsOverview, error)
}
