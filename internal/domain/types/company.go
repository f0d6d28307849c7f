package types

// Company is a registered business. The password hash never leaves the server.
type Company struct {
	ID          CompanyID `json:"id_company"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	RIF         string    `json:"rif,omitempty"`
	Address     string    `json:"address,omitempty"`
}

// Key implements Keyed.
func (c Company) Key() string { return string(c.ID) }

// CompanyRegistration is the payload for creating a company.
type CompanyRegistration struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	RIF         string `json:"rif,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Credentials is the login payload shared by companies and users.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyLogin is returned by a successful company login.
type CompanyLogin struct {
	AccessToken string  `json:"access_token"`
	Company     Company `json:"company"`
}
