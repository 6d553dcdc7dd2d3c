package configs

import (
	"context"
	"errors"
	"log"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"
)

// SeedAdmin สร้าง admin ครั้งแรก ไม่งั้น database เปล่าจะไม่มีใครผ่าน
// RequireAdmin ได้เลย
func SeedAdmin(ctx context.Context, users repository.UserRepository, email string) error {
	if email == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL")
		return nil
	}
	email = utils.NormalizeEmail(email)

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		_, err := users.Insert(ctx, &entity.User{
			Email: email,
			Name:  "Admin",
			Role:  entity.RoleAdmin,
		})
		if err != nil && !errors.Is(err, repository.ErrAlreadyExists) {
			return err
		}
		log.Println("seeded admin:", email)
		return nil
	}

	if user.IsAdmin() {
		log.Println("admin already exists:", email)
		return nil
	}
	_, _, err = users.Promote(ctx, user.ID)
	return err
}
