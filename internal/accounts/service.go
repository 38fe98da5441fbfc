package accounts

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"pizza-store/internal/authz"
	"pizza-store/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// ItemCatalog is the slice of the menu the account service needs:
// favorite items must reference an existing item.
type ItemCatalog interface {
	ItemExists(ctx context.Context, name string) (bool, error)
}

type Service struct {
	log   zerolog.Logger
	repo  Repository
	items ItemCatalog
}

func NewService(log zerolog.Logger, repo Repository, items ItemCatalog) *Service {
	return &Service{log: log, repo: repo, items: items}
}

// Register creates a customer account. Login and password must be
// 1-50 characters, the phone number must match DDD-DDD-DDDD.
func (s *Service) Register(ctx context.Context, login, password, phone string) error {
	if err := validateLogin(login); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("phone number must be in the format XXX-XXX-XXXX: %w", domain.ErrValidation)
	}

	taken, err := s.repo.Exists(ctx, login)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("login %s already exists: %w", login, domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.Create(ctx, domain.Account{
		Login:        login,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		PhoneNum:     phone,
	}); err != nil {
		return err
	}
	s.log.Info().Str("login", login).Msg("user created")
	return nil
}

// Login checks credentials and returns the authenticated account.
func (s *Service) Login(ctx context.Context, login, password string) (domain.Account, error) {
	if err := validateLogin(login); err != nil {
		return domain.Account{}, err
	}
	if err := validatePassword(password); err != nil {
		return domain.Account{}, err
	}
	a, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		return domain.Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return domain.Account{}, fmt.Errorf("incorrect login or password: %w", domain.ErrAccessDenied)
	}
	s.log.Info().Str("login", login).Str("role", string(a.Role)).Msg("user logged in")
	return a, nil
}

func (s *Service) Profile(ctx context.Context, login string) (domain.Account, error) {
	return s.repo.GetByLogin(ctx, login)
}

func (s *Service) ChangePassword(ctx context.Context, sess domain.Session, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, sess.Login, string(hash))
}

func (s *Service) ChangePhone(ctx context.Context, sess domain.Session, phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("phone number must be in the format XXX-XXX-XXXX: %w", domain.ErrValidation)
	}
	return s.repo.UpdatePhone(ctx, sess.Login, phone)
}

func (s *Service) ChangeFavoriteItem(ctx context.Context, sess domain.Session, itemName string) error {
	ok, err := s.items.ItemExists(ctx, itemName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("item %s: %w", itemName, domain.ErrNotFound)
	}
	return s.repo.UpdateFavoriteItem(ctx, sess.Login, itemName)
}

// RenameUser changes another account's login. Manager only; the new
// login must not collide with an existing one.
func (s *Service) RenameUser(ctx context.Context, sess domain.Session, target, newLogin string) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateUser) {
		return domain.ErrAccessDenied
	}
	if err := validateLogin(newLogin); err != nil {
		return err
	}
	exists, err := s.repo.Exists(ctx, target)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", target, domain.ErrNotFound)
	}
	taken, err := s.repo.Exists(ctx, newLogin)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("login %s already exists: %w", newLogin, domain.ErrConflict)
	}
	if err := s.repo.Rename(ctx, target, newLogin); err != nil {
		return err
	}
	s.log.Info().Str("old", target).Str("new", newLogin).Str("by", sess.Login).Msg("user renamed")
	return nil
}

// ChangeRole sets another account's role. Manager only.
func (s *Service) ChangeRole(ctx context.Context, sess domain.Session, target string, role domain.Role) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateUser) {
		return domain.ErrAccessDenied
	}
	exists, err := s.repo.Exists(ctx, target)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", target, domain.ErrNotFound)
	}
	if err := s.repo.UpdateRole(ctx, target, role); err != nil {
		return err
	}
	s.log.Info().Str("login", target).Str("role", string(role)).Str("by", sess.Login).Msg("user role updated")
	return nil
}

func validateLogin(login string) error {
	if len(login) < 1 || len(login) > 50 {
		return fmt.Errorf("login must be between 1 and 50 characters: %w", domain.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 1 || len(password) > 50 {
		return fmt.Errorf("password must be between 1 and 50 characters: %w", domain.ErrValidation)
	}
	return nil
}
