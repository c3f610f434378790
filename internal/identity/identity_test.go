package identity

import "testing"

func TestStoresStartEmpty(t *testing.T) {
	ids := NewContext()

	if !ids.Account.IsEmpty() {
		t.Error("expected account store to start empty")
	}
	if !ids.User.IsEmpty() {
		t.Error("expected user store to start empty")
	}
}

func TestAccountSetMarksNonEmpty(t *testing.T) {
	ids := NewContext()

	ids.Account.Set(Account{ID: "acct_42"})

	if ids.Account.IsEmpty() {
		t.Error("expected account store to be non-empty after Set")
	}
	if got := ids.Account.Get().ID; got != "acct_42" {
		t.Errorf("expected account ID 'acct_42', got %q", got)
	}
}

func TestUserSetShallowMerge(t *testing.T) {
	ids := NewContext()

	ids.User.Set(User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "admin"})
	// A profile edit patches one field; the rest must survive.
	ids.User.Set(User{Name: "Ada L."})

	u := ids.User.Get()
	if u.Name != "Ada L." {
		t.Errorf("expected patched name, got %q", u.Name)
	}
	if u.ID != "u1" || u.Email != "ada@example.com" || u.Role != "admin" {
		t.Errorf("expected untouched fields to survive the merge, got %+v", u)
	}
}

func TestAccountSetShallowMerge(t *testing.T) {
	ids := NewContext()

	ids.Account.Set(Account{ID: "acct_42", Domain: "acme.stellarhub.in", CompanyName: "Acme"})
	ids.Account.Set(Account{CompanyName: "Acme Industrial"})

	a := ids.Account.Get()
	if a.CompanyName != "Acme Industrial" {
		t.Errorf("expected patched company name, got %q", a.CompanyName)
	}
	if a.ID != "acct_42" || a.Domain != "acme.stellarhub.in" {
		t.Errorf("expected untouched fields to survive the merge, got %+v", a)
	}
}

func TestContextReset(t *testing.T) {
	ids := NewContext()
	ids.Account.Set(Account{ID: "acct_42"})
	ids.User.Set(User{ID: "u1", Role: "user"})

	ids.Reset()

	if !ids.Account.IsEmpty() || !ids.User.IsEmpty() {
		t.Error("expected both stores to be empty after Reset")
	}
}
