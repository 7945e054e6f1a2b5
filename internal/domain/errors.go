// Package domain holds the entity types shared by the repositories,
// services and HTTP handlers, plus the sentinel errors the handlers
// translate into HTTP statuses: validation failures map to 400,
// not-found conditions to 404 and everything else to 500.
package domain

import "errors"

var (
	// ErrCodeRequired is returned when a lookup arrives without a code.
	ErrCodeRequired = errors.New("lookup code is required")

	// ErrInvalidLookupType is returned for an unrecognized tipo value.
	ErrInvalidLookupType = errors.New("invalid lookup type")

	ErrPassengerNotFound = errors.New("passenger not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrBaggageNotFound   = errors.New("baggage not found")

	// ErrUpdateFailed is returned when a mutation affected zero rows
	// even though the record existed moments before (it raced with a
	// concurrent delete).
	ErrUpdateFailed = errors.New("update affected no rows")
)
