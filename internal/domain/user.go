package domain

import (
	"strings"

	"punchclock/internal/errors"
)

// Role is the access level of a registered user.
type Role string

const (
	RoleWorker Role = "worker"
	RoleBoss   Role = "boss"
)

// IsValid checks if the role is one of the known tags.
func (r Role) IsValid() bool {
	return r == RoleWorker || r == RoleBoss
}

// User represents a registered user in the domain model.
// Users are immutable after registration and are never deleted.
type User struct {
	Username string
	Role     Role
}

// NewUser creates a new User with the given username and role.
func NewUser(username string, role Role) User {
	return User{
		Username: username,
		Role:     role,
	}
}

// IsBoss returns true if the user holds the supervisor role.
func (u User) IsBoss() bool {
	return u.Role == RoleBoss
}

// String returns the username for display purposes.
func (u User) String() string {
	return u.Username
}

// Directory is the set of registered users. Usernames are unique under
// case-insensitive comparison.
type Directory []User

// Find looks up a user by username, case-insensitively.
func (d Directory) Find(username string) (User, bool) {
	for _, u := range d {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return User{}, false
}

// Register adds a new user to the directory. It fails with a conflict error
// when the username is already taken under case-insensitive comparison.
// The result never shares a backing array with the receiver.
func (d Directory) Register(username string, role Role) (Directory, error) {
	if _, taken := d.Find(username); taken {
		return d, errors.NewConflictError("username already taken: " + username)
	}
	users := make(Directory, len(d), len(d)+1)
	copy(users, d)
	return append(users, NewUser(username, role)), nil
}

// Workers returns the worker users, excluding the given supervisor.
func (d Directory) Workers(viewer User) []User {
	workers := make([]User, 0, len(d))
	for _, u := range d {
		if u.Role != RoleWorker {
			continue
		}
		if strings.EqualFold(u.Username, viewer.Username) {
			continue
		}
		workers = append(workers, u)
	}
	return workers
}
