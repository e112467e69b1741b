package entity

type Contact struct {
	ID       string `json:"id" bson:"id" validate:"required"`
	Name     string `json:"name" bson:"name" validate:"required"`
	Role     string `json:"role" bson:"role"`
	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email" validate:"omitempty,email"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Initials string `json:"initials,omitempty" bson:"initials,omitempty"`
	Color    string `json:"color,omitempty" bson:"color,omitempty"`
	VIP      bool   `json:"vip,omitempty" bson:"vip,omitempty"`
	Status   string `json:"status,omitempty" bson:"status,omitempty"`
	OwnerID  string `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
}
