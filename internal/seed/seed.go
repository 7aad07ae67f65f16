// Package seed provisions the default user accounts on startup.
package seed

import (
	"context"
	"fmt"

	"github.com/emre/acadrecords/internal/app/models"
	"github.com/emre/acadrecords/internal/app/repositories"
	"github.com/emre/acadrecords/internal/pkg/auth"
	"github.com/emre/acadrecords/internal/pkg/logger"
)

type defaultAccount struct {
	username string
	password string
	role     models.RoleType
}

var defaultAccounts = []defaultAccount{
	{username: "admin", password: "admin", role: models.RoleAdmin},
	{username: "user", password: "user", role: models.RoleUser},
}

// CreateDefaultData inserts the built-in admin and user accounts if they
// do not exist yet. There is no self-registration, so these accounts are
// the only way into the API on a fresh database.
func CreateDefaultData(ctx context.Context, userRepo repositories.UserRepository) error {
	for _, account := range defaultAccounts {
		exists, err := userRepo.ExistsByUsername(ctx, account.username)
		if err != nil {
			return fmt.Errorf("failed to check user %s: %w", account.username, err)
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(account.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", account.username, err)
		}

		user := &models.User{
			Username: account.username,
			Password: hashed,
			RoleType: account.role,
		}
		if _, err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", account.username, err)
		}

		logger.Info().
			Str("username", account.username).
			Str("role", string(account.role)).
			Msg("Default account created")
	}

	return nil
}
