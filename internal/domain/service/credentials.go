// Package service holds the domain ports that the greenCart use cases call out to: credential
// hashing, session tokens and session metrics.
package service

// PasswordHasher turns shopper passwords into the hash kept on entity.User and checks login
// attempts against it. The seller password lives in configuration and never passes through here.
type PasswordHasher interface {
	// Hash returns a salted hash of password, suitable for entity.User.PasswordHash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. An empty or malformed hash never matches.
	Check(password, hash string) bool
}
