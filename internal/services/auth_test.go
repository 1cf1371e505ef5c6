package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campustimetable/internal/domain"
)

// fakeHasher stores "hash:<salt><password>" so comparisons are predictable.
type fakeHasher struct {
	saltErr error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt", nil
}

func (f *fakeHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + password, nil
}

func (f *fakeHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer returns "token-<userID>" and records the expiry it was asked for.
type fakeIssuer struct {
	lastExpiry time.Duration
}

func (f *fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	f.lastExpiry = expiry
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		repo     *fakeUserRepo
		hasher   *fakeHasher
		wantErr  string
		errIs    error
	}{
		{name: "success", email: "  Alice@Example.com ", password: "password123", repo: newFakeUserRepo(), hasher: &fakeHasher{}},
		{name: "invalid email", email: "not-an-email", password: "password123", repo: newFakeUserRepo(), hasher: &fakeHasher{}, wantErr: "invalid email format"},
		{name: "short password", email: "a@example.com", password: "short", repo: newFakeUserRepo(), hasher: &fakeHasher{}, wantErr: "password must be at least 8 characters"},
		{name: "duplicate email", email: "taken@example.com", password: "password123", repo: newFakeUserRepo(&domain.User{ID: "u0", Email: "taken@example.com"}), hasher: &fakeHasher{}, errIs: domain.ErrDuplicateEmail},
		{name: "salt failure", email: "a@example.com", password: "password123", repo: newFakeUserRepo(), hasher: &fakeHasher{saltErr: errors.New("no entropy")}, wantErr: "no entropy"},
		{name: "repo failure", email: "a@example.com", password: "password123", repo: &fakeUserRepo{byID: map[string]*domain.User{}, createErr: errors.New("db down")}, hasher: &fakeHasher{}, wantErr: "failed to create user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.repo, tt.hasher, &fakeIssuer{}, time.Hour)
			user, err := svc.SignUp(ctx, tt.email, tt.password, " Alice ")
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "salt", user.Salt)
			assert.Equal(t, "hash:saltpassword123", user.PasswordHash)
			assert.NotEmpty(t, user.ID)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: "u1", Email: "alice@example.com", Salt: "salt", PasswordHash: "hash:saltpassword123"}

	tests := []struct {
		name      string
		email     string
		password  string
		repo      *fakeUserRepo
		wantToken string
		errIs     error
		wantErr   bool
	}{
		{name: "success", email: "ALICE@example.com", password: "password123", repo: newFakeUserRepo(stored), wantToken: "token-u1"},
		{name: "wrong password", email: "alice@example.com", password: "nope", repo: newFakeUserRepo(stored), errIs: domain.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@example.com", password: "password123", repo: newFakeUserRepo(stored), errIs: domain.ErrInvalidCredentials},
		{name: "repo failure", email: "alice@example.com", password: "password123", repo: &fakeUserRepo{getErr: errors.New("db down")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &fakeIssuer{}
			svc := NewAuthService(tt.repo, &fakeHasher{}, issuer, 2*time.Hour)
			token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			if tt.wantErr {
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, 2*time.Hour, issuer.lastExpiry)
		})
	}
}
