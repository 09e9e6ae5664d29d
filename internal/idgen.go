package internal

import "github.com/google/uuid"

// IDGenerator produces session identifiers
type IDGenerator func() string

// UUIDGenerator returns opaque random session ids
func UUIDGenerator() IDGenerator {
	return func() string {
		return "session_" + uuid.NewString()
	}
}

// StaticID always returns id
func StaticID(id string) IDGenerator {
	return func() string {
		return id
	}
}
