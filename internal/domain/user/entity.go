package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Buyers are created on first magic-link verification; admins
// are provisioned manually with a password hash.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	createdAt    time.Time
}

func NewUser(email Email, role Role) *User {
	return &User{
		id:    uuid.New(),
		email: email,
		role:  role,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
