// Package identity holds the signed-in account and user for the life of one
// client process. The stores are populated once per session: the account at
// bootstrap from GET /api/info, the user on first guarded command from
// GET /user/info.
package identity

import "sync"

// Account is the tenant the signed-in user belongs to. Every tenant-scoped
// API path embeds its ID.
type Account struct {
	ID          string `json:"_id"`
	Domain      string `json:"Domain"`
	CompanyName string `json:"CompanyName"`
}

// User is the signed-in user's profile.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Role  string `json:"Role"`
}

// AccountStore holds the current account. Mutation is last-writer-wins.
type AccountStore struct {
	mu sync.RWMutex
	v  Account
}

// Get returns the current account.
func (s *AccountStore) Get() Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set shallow-merges patch into the current account: zero-value fields leave
// the existing value untouched. The merged shape is trusted as-is.
func (s *AccountStore) Set(patch Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.ID != "" {
		s.v.ID = patch.ID
	}
	if patch.Domain != "" {
		s.v.Domain = patch.Domain
	}
	if patch.CompanyName != "" {
		s.v.CompanyName = patch.CompanyName
	}
}

// IsEmpty reports whether the store was never populated.
func (s *AccountStore) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v == (Account{})
}

// Reset clears the store.
func (s *AccountStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = Account{}
}

// UserStore holds the current user. Mutation is last-writer-wins.
type UserStore struct {
	mu sync.RWMutex
	v  User
}

// Get returns the current user.
func (s *UserStore) Get() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set shallow-merges patch into the current user; zero-value fields leave the
// existing value untouched.
func (s *UserStore) Set(patch User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.ID != "" {
		s.v.ID = patch.ID
	}
	if patch.Name != "" {
		s.v.Name = patch.Name
	}
	if patch.Email != "" {
		s.v.Email = patch.Email
	}
	if patch.Role != "" {
		s.v.Role = patch.Role
	}
}

// IsEmpty reports whether the store was never populated.
func (s *UserStore) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v == (User{})
}

// Reset clears the store.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = User{}
}

// Context bundles both identity stores. It is constructed once at startup and
// injected into everything that reads or mutates identity, so there is no
// ambient global to forget to clear.
type Context struct {
	Account *AccountStore
	User    *UserStore
}

// NewContext creates an empty identity context.
func NewContext() *Context {
	return &Context{
		Account: &AccountStore{},
		User:    &UserStore{},
	}
}

// Reset clears both stores. Called on sign-out and on session invalidation.
func (c *Context) Reset() {
	c.Account.Reset()
	c.User.Reset()
}
