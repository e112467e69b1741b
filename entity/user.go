package entity

import "time"

type UserPermissions struct {
	CanManageSettings bool `json:"canManageSettings" bson:"canManageSettings"`
	CanViewSharedData bool `json:"canViewSharedData" bson:"canViewSharedData"`

	CanViewAgenda       bool `json:"canViewAgenda" bson:"canViewAgenda"`
	CanViewMessaging    bool `json:"canViewMessaging" bson:"canViewMessaging"`
	CanViewFnb          bool `json:"canViewFnb" bson:"canViewFnb"`
	CanViewHousekeeping bool `json:"canViewHousekeeping" bson:"canViewHousekeeping"`
	CanViewMaintenance  bool `json:"canViewMaintenance" bson:"canViewMaintenance"`
	CanViewCRM          bool `json:"canViewCRM" bson:"canViewCRM"`
	CanViewReception    bool `json:"canViewReception" bson:"canViewReception"`
	CanViewSpa          bool `json:"canViewSpa" bson:"canViewSpa"`
}

type UserProfile struct {
	UID         string          `json:"uid" bson:"uid"`
	Email       string          `json:"email" bson:"email" validate:"omitempty,email"`
	DisplayName string          `json:"displayName" bson:"displayName"`
	Role        string          `json:"role" bson:"role"`
	Permissions UserPermissions `json:"permissions" bson:"permissions"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
}

const (
	AdminRole   = "admin"
	ManagerRole = "manager"
	StaffRole   = "staff"
)

func (u *UserProfile) IsAdmin() bool {
	return u.Role == AdminRole
}

// IsManagement reports whether the user passes the admin/manager role gate
// used for statistics and the client database.
func (u *UserProfile) IsManagement() bool {
	return u.Role == AdminRole || u.Role == ManagerRole
}

func AllPermissions() UserPermissions {
	return UserPermissions{
		CanManageSettings:   true,
		CanViewSharedData:   true,
		CanViewAgenda:       true,
		CanViewMessaging:    true,
		CanViewFnb:          true,
		CanViewHousekeeping: true,
		CanViewMaintenance:  true,
		CanViewCRM:          true,
		CanViewReception:    true,
		CanViewSpa:          true,
	}
}
