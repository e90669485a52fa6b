package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/domain/repositories"
	"oysterkode.backend/pkg/crypto"
	"oysterkode.backend/pkg/jwt"
)

// TokenRevoker records logged-out token ids until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// AuthUsecase handles administrator authentication
type AuthUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
	revoker    TokenRevoker
}

// NewAuthUsecase creates a new auth usecase. revoker may be nil, in which
// case Logout is a no-op and tokens stay valid until expiry.
func NewAuthUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService, revoker TokenRevoker) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		revoker:    revoker,
	}
}

// Login verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords fail identically.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (*entities.AuthResult, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			crypto.BurnComparison(password)
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, err
	}

	if !crypto.CheckPassword(password, admin.PasswordHash) {
		return nil, domainerrors.InvalidCredentials()
	}

	token, claims, err := u.jwtService.GenerateToken(admin.ID.Hex(), admin.Username)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Admin:     admin,
	}, nil
}

// EnsureAdminExists creates the first administrator. It does nothing when
// any administrator is already present.
func (u *AuthUsecase) EnsureAdminExists(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, domainerrors.BadRequest("username is required")
	}
	if len([]rune(username)) > entities.MaxUsernameLength {
		return false, domainerrors.BadRequest(fmt.Sprintf("username must be at most %d characters", entities.MaxUsernameLength))
	}
	if err := crypto.ValidatePassword(password); err != nil {
		return false, domainerrors.BadRequest(err.Error())
	}

	n, err := u.adminRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return false, err
	}
	if err := u.adminRepo.Create(ctx, entities.NewAdmin(username, hash)); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout revokes the presented token when a revocation store is configured.
func (u *AuthUsecase) Logout(ctx context.Context, identity *entities.Identity) error {
	if u.revoker == nil || identity == nil || identity.TokenID == "" {
		return nil
	}
	return u.revoker.Revoke(ctx, identity.TokenID, identity.ExpiresAt)
}

// Me returns the authenticated administrator.
func (u *AuthUsecase) Me(ctx context.Context, adminID string) (*entities.Admin, error) {
	id, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, domainerrors.Unauthorized("Invalid token")
	}
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Administrator no longer exists")
		}
		return nil, err
	}
	return admin, nil
}

// ChangePassword replaces the password after checking the current one.
func (u *AuthUsecase) ChangePassword(ctx context.Context, adminID string, input *entities.ChangePasswordInput) error {
	admin, err := u.Me(ctx, adminID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.InvalidCredentials()
	}
	if err := crypto.ValidatePassword(input.NewPassword); err != nil {
		return domainerrors.BadRequest(err.Error())
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.adminRepo.UpdatePassword(ctx, admin.ID, hash)
}
