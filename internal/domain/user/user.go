package user

import "time"

// User is a platform account as stored in the console's user store. IsAdmin
// is the authorization flag the session gate reads; everything else is
// display data.
type User struct {
	ID          string
	Email       string
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
}
