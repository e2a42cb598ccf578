// Package userstore is the gorm read side of the console's user store.
package userstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mohammadpnp/admin-console/internal/domain/user"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/db/models"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindIDByEmail resolves a normalized email to the user's id. Returns
// user.ErrNotFound when no account matches.
func (r *Repository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		Select("id").
		Where("lower(email) = ?", strings.ToLower(email)).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", user.ErrNotFound
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	return row.ID, nil
}

// AdminFlag reads the per-user authorization flag the session gate checks.
func (r *Repository) AdminFlag(ctx context.Context, userID string) (bool, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		Select("id", "is_admin").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, user.ErrNotFound
		}
		return false, fmt.Errorf("read admin flag: %w", err)
	}

	return row.IsAdmin, nil
}
