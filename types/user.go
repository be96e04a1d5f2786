package types

import "time"

// User represents an account in the system.
// It contains identity, profile, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Email is the user's email address. Unique across all accounts.
	Email string `json:"email" db:"email"`

	// FullName is the user's display or full name.
	FullName string `json:"fullName" db:"full_name"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone,omitempty" db:"phone"`

	// Username is an optional handle. Uniqueness is only enforced
	// when the value is non-empty.
	Username string `json:"username,omitempty" db:"username"`

	// Occupation is an optional free-form profile field.
	Occupation string `json:"occupation,omitempty" db:"occupation"`

	// Bio is an optional free-form profile field.
	Bio string `json:"bio,omitempty" db:"bio"`

	// ProfileImage is the object key of the user's avatar in object
	// storage, empty until one is uploaded.
	ProfileImage string `json:"profileImage,omitempty" db:"profile_image"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
