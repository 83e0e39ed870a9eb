package account

import "time"

// User is the ownership anchor for advertisements, offers, favorites,
// club history, problems and chats. Credentials and tokens live in the
// auth subsystem; this core only needs identity and existence.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
