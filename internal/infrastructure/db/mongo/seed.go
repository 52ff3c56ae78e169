package mongo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
)

// Seed populates an empty store with the demo catalog and the two contract
// accounts. Re-running against a populated store is a no-op, so the
// data-access service can call it unconditionally at startup.
func Seed(ctx context.Context, items *ItemRepository, users *UserRepository, log zerolog.Logger) error {
	count, err := items.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		seedItems := []domain.Item{
			{Name: "Espresso Cup", Price: 7.50, Stock: 120},
			{Name: "Notebook A5", Price: 4.20, Stock: 300},
			{Name: "Desk Lamp", Price: 28.00, Stock: 45},
			{Name: "Water Bottle", Price: 11.90, Stock: 80},
			{Name: "Canvas Tote", Price: 9.00, Stock: 150},
		}
		created, err := items.CreateMany(ctx, seedItems)
		if err != nil {
			return err
		}
		log.Info().Int("items", len(created)).Msg("seeded catalog")
	}

	for _, user := range []domain.User{
		{Username: "admin", Password: "admin", Role: domain.RoleAdmin},
		{Username: "user", Password: "user", Role: domain.RoleCustomer},
	} {
		if _, err := users.FindByUsername(ctx, user.Username); err == nil {
			continue
		}
		if _, err := users.Create(ctx, &user); err != nil && err != domain.ErrUserExists {
			return err
		}
		log.Info().Str("username", user.Username).Str("role", user.Role).Msg("seeded account")
	}

	return nil
}
