// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dumpmycash/backend/internal/application/adapter"
	"github.com/dumpmycash/backend/internal/domain/entity"
	domainerror "github.com/dumpmycash/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository for tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domainerror.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// fakePasswordService hashes by prefixing; strength requires 8+ characters.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// fakeTokenService issues deterministic tokens and tracks revocations.
type fakeTokenService struct {
	issued      int
	revoked     map[string]bool
	userTokens  map[uuid.UUID][]string
	claimsByTok map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		revoked:     make(map[string]bool),
		userTokens:  make(map[uuid.UUID][]string),
		claimsByTok: make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.issued++
	pair := &adapter.TokenPair{
		AccessToken:  "access-" + uuid.NewString(),
		RefreshToken: "refresh-" + uuid.NewString(),
	}
	s.claimsByTok[pair.RefreshToken] = &adapter.TokenClaims{UserID: userID, Email: email}
	s.userTokens[userID] = append(s.userTokens[userID], pair.RefreshToken)
	return pair, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claimsByTok[token]
	if !ok {
		return nil, errors.New("unknown refresh token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	for _, token := range s.userTokens[userID] {
		s.revoked[token] = true
	}
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !s.revoked[token], nil
}

func TestRegisterUser(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "ada@example.com",
		Username: "ada",
		Name:     "Ada",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if output.User.PasswordHash == "correct-horse" {
		t.Error("expected the password to be stored hashed")
	}
}

func TestRegisterUserValidation(t *testing.T) {
	existing := entity.NewUser("taken@example.com", "taken", "Taken", "hashed:something8")

	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:     "bad email format",
			input:    RegisterUserInput{Email: "not-an-email", Username: "x", Name: "X", Password: "longenough"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "a@example.com", Username: "a", Name: "A", Password: "short"},
			wantCode: domainerror.ErrCodeWeakPassword,
		},
		{
			name:     "email taken",
			input:    RegisterUserInput{Email: "taken@example.com", Username: "fresh", Name: "F", Password: "longenough"},
			wantCode: domainerror.ErrCodeEmailAlreadyExists,
		},
		{
			name:     "username taken",
			input:    RegisterUserInput{Email: "fresh@example.com", Username: "taken", Name: "F", Password: "longenough"},
			wantCode: domainerror.ErrCodeUsernameAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(newFakeUserRepo(existing), fakePasswordService{}, newFakeTokenService())

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected *AuthError, got %T", err)
			}
			if authErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", authErr.Code, tt.wantCode)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	user := entity.NewUser("ada@example.com", "ada", "Ada", "hashed:correct-horse")
	repo := newFakeUserRepo(user)

	t.Run("valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		output, err := uc.Execute(context.Background(), LoginUserInput{Email: "ada@example.com", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.User.ID != user.ID {
			t.Error("expected the stored user in the output")
		}
	})

	// Unknown email and wrong password must be indistinguishable
	for _, tc := range []struct {
		name  string
		input LoginUserInput
	}{
		{"wrong password", LoginUserInput{Email: "ada@example.com", Password: "wrong"}},
		{"unknown email", LoginUserInput{Email: "ghost@example.com", Password: "correct-horse"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
			_, err := uc.Execute(context.Background(), tc.input)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected *AuthError, got %v", err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeInvalidCredentials)
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	tokens := newFakeTokenService()
	userID := uuid.New()
	pair, err := tokens.GenerateTokenPair(context.Background(), userID, "ada@example.com")
	if err != nil {
		t.Fatalf("setup error = %v", err)
	}

	uc := NewRefreshTokenUseCase(tokens)
	output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.RefreshToken == pair.RefreshToken {
		t.Error("expected a rotated refresh token")
	}
	if !tokens.revoked[pair.RefreshToken] {
		t.Error("expected the old refresh token to be invalidated")
	}

	// The old token works exactly once
	_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError on reuse, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeRevokedToken {
		t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeRevokedToken)
	}
}

func TestLogoutUser(t *testing.T) {
	t.Run("with refresh token ends one session", func(t *testing.T) {
		tokens := newFakeTokenService()
		userID := uuid.New()
		first, _ := tokens.GenerateTokenPair(context.Background(), userID, "a@example.com")
		second, _ := tokens.GenerateTokenPair(context.Background(), userID, "a@example.com")

		uc := NewLogoutUserUseCase(tokens)
		if err := uc.Execute(context.Background(), LogoutUserInput{UserID: userID, RefreshToken: first.RefreshToken}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !tokens.revoked[first.RefreshToken] {
			t.Error("expected the presented token to be revoked")
		}
		if tokens.revoked[second.RefreshToken] {
			t.Error("expected other sessions to survive")
		}
	})

	t.Run("without refresh token revokes every session", func(t *testing.T) {
		tokens := newFakeTokenService()
		userID := uuid.New()
		first, _ := tokens.GenerateTokenPair(context.Background(), userID, "a@example.com")
		second, _ := tokens.GenerateTokenPair(context.Background(), userID, "a@example.com")

		uc := NewLogoutUserUseCase(tokens)
		if err := uc.Execute(context.Background(), LogoutUserInput{UserID: userID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !tokens.revoked[first.RefreshToken] || !tokens.revoked[second.RefreshToken] {
			t.Error("expected every session to be revoked")
		}
	})
}
