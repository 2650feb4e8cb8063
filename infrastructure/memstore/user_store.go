package memstore

import (
	"sync"

	"tailingsiq-backend/domain"
)

// UserStore is the mock user directory. Passwords are stored in plain text
// because this backend authenticates demo users only.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.StoredUser
}

// NewUserStore creates the directory seeded with the demo users.
func NewUserStore() *UserStore {
	return &UserStore{
		users: map[string]domain.StoredUser{
			"test_user": {
				User: domain.User{
					Username: "test_user",
					Email:    "test@example.com",
					FullName: "Test User",
					Disabled: false,
				},
				Password: "password",
			},
			"inactive_user": {
				User: domain.User{
					Username: "inactive_user",
					Email:    "inactive@example.com",
					FullName: "Inactive User",
					Disabled: true,
				},
				Password: "password",
			},
		},
	}
}

// Get returns a stored user by username.
func (s *UserStore) Get(username string) (domain.StoredUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	return u, ok
}
