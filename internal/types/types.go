// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the roster store, storage adapters, exporters and handlers can all import
// types without depending on each other.
package types

import "time"

// StudentInput carries the caller-editable fields of a student record.
// It is the payload for both create and update.
//
// The json keys mirror the snapshot format the roster has always been
// persisted in ("rollno", "std"), so old snapshots keep loading.
//
// validate:"..." rules are checked by go-playground/validator. "mobile" is
// a custom tag registered by the roster package: exactly 10 ASCII digits.
// The field order below is the order validation failures are reported in.
type StudentInput struct {
	Name       string `json:"name"   validate:"required,min=2"`
	RollNumber string `json:"rollno" validate:"required"`
	Standard   string `json:"std"    validate:"required"`
	Mobile     string `json:"mobile" validate:"required,mobile"`
}

// Student is one record in the roster.
//
// ID and CreatedAt are assigned once by the roster store and never change.
// UpdatedAt stays nil until the first successful update.
type Student struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	RollNumber string     `json:"rollno"`
	Standard   string     `json:"std"`
	Mobile     string     `json:"mobile"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// Input returns the editable fields of s.
func (s Student) Input() StudentInput {
	return StudentInput{
		Name:       s.Name,
		RollNumber: s.RollNumber,
		Standard:   s.Standard,
		Mobile:     s.Mobile,
	}
}
