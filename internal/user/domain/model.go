package domain

// Role gates access to the management surface. Every registered
// account starts as a plain user and is promoted by an admin.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

type User struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number;type:text;not null;uniqueIndex:ux_users_phone_number"`
	Password    string `json:"-" gorm:"type:text;not null"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Role        Role   `json:"role" gorm:"type:text;not null"`
}

func (User) TableName() string { return "users" }
