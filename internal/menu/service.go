package menu

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"pizza-store/internal/authz"
	"pizza-store/internal/domain"
)

type Service struct {
	log  zerolog.Logger
	repo Repository
}

func NewService(log zerolog.Logger, repo Repository) *Service {
	return &Service{log: log, repo: repo}
}

func (s *Service) Browse(ctx context.Context, l Listing) ([]domain.Item, error) {
	return s.repo.List(ctx, l)
}

func (s *Service) ItemExists(ctx context.Context, name string) (bool, error) {
	return s.repo.ItemExists(ctx, name)
}

// AddItem inserts a new menu item. Manager only; the name must be free.
func (s *Service) AddItem(ctx context.Context, sess domain.Session, it domain.Item) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateMenu) {
		return domain.ErrAccessDenied
	}
	if err := validateItem(it); err != nil {
		return err
	}
	taken, err := s.repo.ItemExists(ctx, it.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("item %s already exists: %w", it.Name, domain.ErrConflict)
	}
	if err := s.repo.Insert(ctx, it); err != nil {
		return err
	}
	s.log.Info().Str("item", it.Name).Str("by", sess.Login).Msg("menu item added")
	return nil
}

// UpdateItem replaces the mutable fields of an existing item.
func (s *Service) UpdateItem(ctx context.Context, sess domain.Session, it domain.Item) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateMenu) {
		return domain.ErrAccessDenied
	}
	if err := validateItem(it); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, it); err != nil {
		return err
	}
	s.log.Info().Str("item", it.Name).Str("by", sess.Login).Msg("menu item updated")
	return nil
}

// RenameItem checks the target name for collision before mutating.
func (s *Service) RenameItem(ctx context.Context, sess domain.Session, oldName, newName string) error {
	if !authz.Allowed(sess.Role, authz.ActionUpdateMenu) {
		return domain.ErrAccessDenied
	}
	if newName == "" || len(newName) > 50 {
		return fmt.Errorf("item name must be between 1 and 50 characters: %w", domain.ErrValidation)
	}
	taken, err := s.repo.ItemExists(ctx, newName)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("item %s already exists: %w", newName, domain.ErrConflict)
	}
	if err := s.repo.Rename(ctx, oldName, newName); err != nil {
		return err
	}
	s.log.Info().Str("old", oldName).Str("new", newName).Str("by", sess.Login).Msg("menu item renamed")
	return nil
}

func (s *Service) Get(ctx context.Context, name string) (domain.Item, error) {
	return s.repo.GetByName(ctx, name)
}

func validateItem(it domain.Item) error {
	if it.Name == "" || len(it.Name) > 50 {
		return fmt.Errorf("item name must be between 1 and 50 characters: %w", domain.ErrValidation)
	}
	switch it.Category {
	case domain.CategoryEntree, domain.CategorySides, domain.CategoryDrinks:
	default:
		return fmt.Errorf("category must be entree, sides or drinks: %w", domain.ErrValidation)
	}
	if it.Price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", domain.ErrValidation)
	}
	return nil
}
