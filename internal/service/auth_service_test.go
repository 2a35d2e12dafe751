package service_test

import (
	"errors"
	"testing"

	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/service"
	"go-mini-erp/pkg/jwt"
)

func TestLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	if _, err := svc.CreateUser("alice", "s3cret", "admin"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	response, err := svc.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if response.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", response.TokenType)
	}

	claims, err := jwt.ValidateToken(response.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("sub = %q, want alice", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestLoginUniformFailure(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	if _, err := svc.CreateUser("alice", "s3cret", ""); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, wrongPassword := svc.Login("alice", "nope")
	_, unknownUser := svc.Login("bob", "whatever")

	if !errors.Is(wrongPassword, service.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownUser, service.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestCreateUserDefaultsAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	user, err := svc.CreateUser("carol", "pw", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != "viewer" {
		t.Errorf("role = %q, want viewer default", user.Role)
	}
	if !user.CheckPassword("pw") {
		t.Error("stored hash does not verify the password")
	}
	if user.CheckPassword("other") {
		t.Error("stored hash verifies a wrong password")
	}

	if _, err := svc.CreateUser("carol", "pw2", "admin"); !errors.Is(err, service.ErrUserExists) {
		t.Errorf("duplicate err = %v, want ErrUserExists", err)
	}
}
