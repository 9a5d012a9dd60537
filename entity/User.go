package entity

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

type User struct {
	Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     Role   `gorm:"size:20;not null;default:MEMBER" json:"role"`
	// ADMIN อาจไม่มีประเทศ (เห็นได้ทุกประเทศ)
	Country string `json:"country,omitempty"`

	Orders []Order `json:"-"`
}
