package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/hash"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
	"github.com/Skotchmaster/restaurant_ordering/pkg/tokens"
)

// Literal passwords accepted for any account while DemoBypass is on.
const (
	DemoCustomerPassword = "demo123"
	DemoAdminPassword    = "admin123"
)

const minPasswordLength = 6

type AuthService struct {
	Repo       *repo.GormRepo
	Tokens     TokenIssuer
	Events     events.Publisher
	DemoBypass bool
}

func (s *AuthService) passwordOK(pwHash, password, demo string) bool {
	if hash.CheckPassword(pwHash, password) {
		return true
	}
	return s.DemoBypass && password == demo
}

func (s *AuthService) CustomerLogin(ctx context.Context, req transport.CustomerLoginRequest) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.customer_login")

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", invalid("Email and password are required")
	}

	user, err := s.Repo.GetUserByEmail(ctx, normalizeLogin(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: unknown email", ErrUnauthorized)
		}
		return nil, "", err
	}
	if !s.passwordOK(user.PasswordHash, req.Password, DemoCustomerPassword) {
		l.Warn("login_failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, "", fmt.Errorf("%w: password mismatch", ErrUnauthorized)
	}

	token, err := s.Tokens.Issue(user.ID, tokens.RoleCustomer)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*models.User, string, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		return nil, "", invalid("All fields are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", invalid("Password must be at least 6 characters")
	}

	email := normalizeLogin(req.Email)
	_, err := s.Repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, "", fmt.Errorf("%w: email %s", ErrConflict, email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Repo.CreateUser(ctx, &models.User{
		Email:        email,
		PasswordHash: pwHash,
		FullName:     req.FullName,
		Phone:        req.Phone,
	})
	if err != nil {
		return nil, "", storeErr(err, "email "+email)
	}
	publish(ctx, s.Events, events.TopicUser, strconv.FormatUint(uint64(user.ID), 10), events.UserSignedUp, user)

	token, err := s.Tokens.Issue(user.ID, tokens.RoleCustomer)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, req transport.AdminLoginRequest) (*models.Admin, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.admin_login")

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, "", invalid("Username and password are required")
	}

	admin, err := s.Repo.GetAdminByUsername(ctx, normalizeLogin(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: unknown username", ErrUnauthorized)
		}
		return nil, "", err
	}
	if !s.passwordOK(admin.PasswordHash, req.Password, DemoAdminPassword) {
		l.Warn("login_failed", "reason", "password mismatch", "admin_id", admin.ID)
		return nil, "", fmt.Errorf("%w: password mismatch", ErrUnauthorized)
	}

	token, err := s.Tokens.Issue(admin.ID, tokens.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return admin, token, nil
}

func normalizeLogin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
