package service

import (
	"context"
	"errors"
	"testing"

	"go-gin-jobmarket/internal/domain"
)

func TestSignupAndLoginUser(t *testing.T) {
	f := newFixture()

	u, err := f.identity.SignupUser(context.Background(), SignupUserInput{
		FirstName: "Ada", LastName: "L", Email: "Ada@Example.com", Password: "secret",
	})
	if err != nil {
		t.Fatalf("SignupUser: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("email must be normalized, got %q", u.Email)
	}
	if u.Avatar != domain.DefaultAvatar {
		t.Fatal("missing avatar must fall back to the default")
	}
	if u.PasswordHash == "secret" {
		t.Fatal("password must be hashed")
	}

	if _, err := f.identity.SignupUser(context.Background(), SignupUserInput{
		Email: "ada@example.com", Password: "other",
	}); domain.CodeOf(err) != domain.CodeConflict {
		t.Fatal("duplicate signup must be 409")
	}

	if _, err := f.identity.LoginUser(context.Background(), "ADA@example.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := f.identity.LoginUser(context.Background(), "ada@example.com", "wrong"); domain.CodeOf(err) != domain.CodeUnauthenticated {
		t.Fatal("wrong password must be 401")
	}
	if _, err := f.identity.LoginUser(context.Background(), "ghost@example.com", "x"); domain.CodeOf(err) != domain.CodeUnauthenticated {
		t.Fatal("unknown email must be 401, not 404")
	}
}

func TestSignupCompanyAndLogin(t *testing.T) {
	f := newFixture()

	c, err := f.identity.SignupCompany(context.Background(), SignupCompanyInput{
		Name: "Acme", Email: "hr@acme.test", Password: "pw",
	})
	if err != nil {
		t.Fatalf("SignupCompany: %v", err)
	}
	if c.Verified {
		t.Fatal("new company must start unverified")
	}
	if _, err := f.identity.LoginCompany(context.Background(), "hr@acme.test", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	f := newFixture()
	u, _ := f.identity.SignupUser(context.Background(), SignupUserInput{
		FirstName: "Ada", LastName: "L", Email: "a@b.c", Password: "pw",
	})

	got, err := f.identity.UpdateUser(context.Background(), u.ID, UpdateUserInput{LastName: "Lovelace"})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.FirstName != "Ada" || got.LastName != "Lovelace" {
		t.Fatalf("partial update wrong: %q %q", got.FirstName, got.LastName)
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.identity.SeedAdmin(ctx, "root@x.test", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := f.identity.SeedAdmin(ctx, "root@x.test", "pw"); err != nil {
		t.Fatal(err)
	}
	if len(f.store.admins) != 1 {
		t.Fatalf("admins = %d, want 1", len(f.store.admins))
	}
	if _, err := f.identity.LoginAdmin(ctx, "root@x.test", "pw"); err != nil {
		t.Fatalf("admin login: %v", err)
	}
}

func TestActorExists(t *testing.T) {
	f := newFixture()
	f.seedUser("u1")
	f.seedCompany("c1", false)

	cases := []struct {
		role, id string
		want     bool
	}{
		{domain.RoleUser, "u1", true},
		{domain.RoleUser, "ghost", false},
		{domain.RoleCompany, "c1", true},
		{domain.RoleAdmin, "u1", false},
		{"alien", "u1", false},
	}
	for _, tc := range cases {
		got, err := f.identity.ActorExists(context.Background(), tc.role, tc.id)
		if err != nil {
			t.Fatalf("ActorExists(%s,%s): %v", tc.role, tc.id, err)
		}
		if got != tc.want {
			t.Errorf("ActorExists(%s,%s) = %v, want %v", tc.role, tc.id, got, tc.want)
		}
	}
}

type brokenUsers struct{ memUsers }

func (brokenUsers) Create(context.Context, *domain.User) error {
	return errors.New("connection reset by peer")
}

func TestSignupUserStoreFailureIsInternal(t *testing.T) {
	f := newFixture()
	svc := NewIdentityService(brokenUsers{memUsers{f.store}}, memCompanies{f.store}, memAdmins{f.store})

	_, err := svc.SignupUser(context.Background(), SignupUserInput{Email: "a@b.c", Password: "pw"})
	if domain.CodeOf(err) != domain.CodeInternal {
		t.Fatalf("infra failure: code = %d, want 500", domain.CodeOf(err))
	}
}
