package types

// CompanySession is the state held by the company identity store.
type CompanySession struct {
	Company *Company `json:"company"`
	Token   *string  `json:"token"`
}

// UserSession is the state held by the user identity store.
type UserSession struct {
	User *User `json:"user"`
}

// TokenSession is the state held by the session token store.
type TokenSession struct {
	Token *string `json:"token"`
}
