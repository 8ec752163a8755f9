package domain

import "time"

// Account is a credential record. The ID is an opaque, stable identifier;
// every other record in the system that needs to point at a user keys on it,
// so renaming a user never requires migrating foreign records.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}
