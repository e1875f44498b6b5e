package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/domain/repository"
	pkgAuth "github.com/vominhduc11/dealerhub/internal/pkg/auth"
)

// AuthUseCase handles dealer account lifecycle and token management.
type AuthUseCase struct {
	dealers repository.DealerRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(dealers repository.DealerRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{dealers: dealers, hasher: hasher, tokens: strategy}
}

// Register creates a new dealer with login/password and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.Dealer, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	dealer, err := u.dealers.Create(ctx, login, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(dealer.ID)
	if err != nil {
		return nil, "", err
	}

	return dealer, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Dealer, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	dealer, err := u.dealers.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(dealer.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(dealer.ID)
	if err != nil {
		return nil, "", err
	}

	return dealer, token, nil
}

// ParseToken extracts dealer ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches dealer by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Dealer, error) {
	return u.dealers.GetByID(ctx, id)
}
