package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_Signup_Validation(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(noopAccountRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input SignupInput
	}{
		{name: "empty email", input: SignupInput{Email: "", Password: "longenough"}},
		{name: "malformed email", input: SignupInput{Email: "not-an-email", Password: "longenough"}},
		{name: "short password", input: SignupInput{Email: "a@example.com", Password: "short"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Signup(ctx, tc.input)
			assertErrorCode(t, err, models.CodeValidation)
		})
	}
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := noopAccountRepo()
	repo.getByEmailFn = func(_ context.Context, _ string) (*models.Account, error) {
		return &models.Account{Key: "existing"}, nil
	}
	svc := NewAccountService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "longenough"})
	assertErrorCode(t, err, models.CodeValidation)
}

func TestAccountService_Signup_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := noopAccountRepo()
	var stored *models.Account
	repo.createFn = func(_ context.Context, a *models.Account) error {
		stored = a
		return nil
	}
	svc := NewAccountService(repo)

	account, err := svc.Signup(context.Background(), SignupInput{Email: "  A@Example.COM ", Password: "longenough"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "a@example.com", stored.Email)
	assert.NotEqual(t, "longenough", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("longenough")))
	assert.Equal(t, account, stored)
}

func TestAccountService_Authenticate(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopAccountRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Account, error) {
		if email == "a@example.com" {
			return &models.Account{Key: "acct-1", Email: email, Password: string(hashed)}, nil
		}
		return nil, nil
	}
	svc := NewAccountService(repo)
	ctx := context.Background()

	account, err := svc.Authenticate(ctx, "a@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", account.Key)

	_, err = svc.Authenticate(ctx, "a@example.com", "wrong")
	assertErrorCode(t, err, models.CodeUnauthorized)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct-horse")
	assertErrorCode(t, err, models.CodeUnauthorized)
}
