package models

// AuthClaims is the subset of the gateway-validated JWT this service
// reads. The token signature is checked upstream; handlers only consume
// the identity fields.
type AuthClaims struct {
	Exp           int64    `json:"exp"`
	IAT           int64    `json:"iat"`
	ISS           string   `json:"iss"`
	SUB           string   `json:"sub"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	EmailVerified bool     `json:"email_verified"`
	RealmAccess   struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// UserID returns the stable user identifier carried by the token
func (c *AuthClaims) UserID() string {
	return c.SUB
}

// HasRole reports whether the token carries the given realm role
func (c *AuthClaims) HasRole(role string) bool {
	for _, r := range c.RealmAccess.Roles {
		if r == role {
			return true
		}
	}
	return false
}
