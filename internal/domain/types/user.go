package types

import "time"

// Role is the job role of a user inside a company.
type Role string

const (
	RoleUser      Role = "Usuario"
	RoleSupport   Role = "Soporte"
	RoleOperator  Role = "Operador"
	RoleOwner     Role = "Propietario"
	RoleDeveloper Role = "Programador"

	// DefaultUserRole is assigned when a user is created without a role.
	DefaultUserRole = RoleUser
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSupport, RoleOperator, RoleOwner, RoleDeveloper:
		return true
	}
	return false
}

// BirthDateLayout is the wire format of User.BirthDate.
const BirthDateLayout = "2006-01-02"

// User is an account that belongs to a company.
type User struct {
	ID         UserID    `json:"id_user"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	JobTitle   string    `json:"job_title,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	Role       Role      `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	CompanyID  CompanyID `json:"company_id"`
	Company    *Company  `json:"company,omitempty"`
}

// Key implements Keyed.
func (u User) Key() string { return string(u.ID) }

// NewUser is the payload for creating a user.
type NewUser struct {
	Name      string    `json:"name" form:"name"`
	Email     string    `json:"email" form:"email"`
	Password  string    `json:"password" form:"password"`
	Role      Role      `json:"role,omitempty" form:"role"`
	CompanyID CompanyID `json:"company_id" form:"company_id"`
	Phone     string    `json:"phone,omitempty" form:"phone"`
	JobTitle  string    `json:"job_title,omitempty" form:"job_title"`
	Gender    string    `json:"gender,omitempty" form:"gender"`
	BirthDate string    `json:"birth_date,omitempty" form:"birth_date"`
}

// UserPatch carries a partial user update; nil fields are left unchanged.
type UserPatch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	BirthDate  *string `json:"birth_date,omitempty"`
	Password   *string `json:"password,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	IsVerified *bool   `json:"is_verified,omitempty"`
}

// UserLogin is returned by a successful user login.
type UserLogin struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// PasswordChange is the payload of the change-password endpoint.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
