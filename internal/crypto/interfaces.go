package crypto

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_deriver_mock.go -package=mock

// PasswordDeriver turns a secured entity's persisted salt into the password
// its visitors must present.
//
// The password is never stored: it is recomputed from (salt, id) whenever the
// owner views the entity and whenever a visitor submits an attempt.
// Regenerating the password means persisting a fresh salt.
type PasswordDeriver interface {
	// DeriveSalt returns fresh salt material for an entity created at
	// created. Two calls never return the same value.
	DeriveSalt(created time.Time) (string, error)

	// DerivePassword deterministically maps (salt, id) to a short password.
	DerivePassword(salt, id string) string
}
