package types

import "time"

// Project represents a single playground project: a named piece of
// source text in one language, owned by exactly one user.
type Project struct {
	// ID is the unique identifier of the project.
	ID int `json:"id" db:"id"`

	// Name is the human-readable project name.
	Name string `json:"name" db:"name"`

	// Language is the project's language tag. It is one of the
	// supported set (python, java, javascript, cpp, c, go, bash) or
	// the "placeholder" sentinel for a project whose language has not
	// been chosen yet.
	Language string `json:"projLanguage" db:"language"`

	// Code is the project's source text. New projects are seeded with
	// the starter template for their language.
	Code string `json:"code" db:"code"`

	// CreatedBy is the identifier of the owning user. Every read and
	// write of a project is scoped by this field.
	CreatedBy int `json:"createdBy" db:"created_by"`

	// Version is the interpreter/compiler version string passed to the
	// remote execution provider. Defaults from the per-language table
	// when the client omits it.
	Version string `json:"version" db:"version"`

	// Runtime is an optional runtime alias for the execution provider
	// (e.g. "node" for javascript). Defaults from the language.
	Runtime string `json:"runtime,omitempty" db:"runtime"`

	// CreatedAt is the timestamp at which the project was created.
	CreatedAt time.Time `json:"date" db:"created_at"`
}
