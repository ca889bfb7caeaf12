package common

import (
	"context"
	"errors"
	"fmt"
	"styledecor/src/db"
	"styledecor/src/models"
	"styledecor/src/models/scopes"
	"styledecor/src/types"

	"gorm.io/gorm"
)

// UpsertUser creates the caller's profile on first sign-in. An existing row is
// returned unchanged with created == false.
func UpsertUser(ctx context.Context, email, uid string, body *types.UpsertUserRequestBody) (user *models.User, created bool, err error) {
	db := db.GetDb()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.User
		if err := tx.
			Where(&models.User{Email: email}).
			Limit(1).
			Find(&existing).
			Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			user = &existing[0]
			return nil
		}
		newUser := models.User{
			UID:      uid,
			Email:    email,
			Name:     body.Name,
			PhotoURL: body.PhotoURL,
			Role:     types.ROLE_USER,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			return fmt.Errorf("error creating user %s: %w", email, err)
		}
		user = &newUser
		created = true
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		u, ferr := GetUserByEmail(ctx, email)
		return u, false, ferr
	}
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Where(&models.User{Email: email}).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserRole falls back to "user" for callers without a profile row.
func GetUserRole(ctx context.Context, email string) (types.Role, error) {
	user, err := GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return types.ROLE_USER, nil
	}
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return types.ROLE_USER, nil
	}
	return user.Role, nil
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	db := db.GetDb()
	err := db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func UpdateUserRole(ctx context.Context, id uint, role types.Role) (*types.UpdateResult, error) {
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	db := db.GetDb()
	res := db.
		WithContext(ctx).
		Model(&models.User{}).
		Scopes(scopes.WithID(id)).
		Update("role", role)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return &types.UpdateResult{Acknowledged: true, ModifiedCount: res.RowsAffected}, nil
}
