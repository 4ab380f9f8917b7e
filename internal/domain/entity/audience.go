package entity

// Audience is the trust domain a session token is scoped to.
type Audience string

const (
	// AudienceUser scopes a token to a stored shopper, identified by user id.
	AudienceUser Audience = "user"
	// AudienceSeller scopes a token to the configured seller, identified by email.
	AudienceSeller Audience = "seller"
)

// String returns the string representation of the Audience.
func (a Audience) String() string {
	return string(a)
}

// IsValid checks if the Audience is a known trust domain.
func (a Audience) IsValid() bool {
	switch a {
	case AudienceUser, AudienceSeller:
		return true
	default:
		return false
	}
}
