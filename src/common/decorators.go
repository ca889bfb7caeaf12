package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"styledecor/src/db"
	"styledecor/src/models"
	"styledecor/src/models/scopes"
	"styledecor/src/types"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ApplyAsDecorator records a pending application for email. Each email may
// apply once.
func ApplyAsDecorator(ctx context.Context, email string, body *types.CreateDecoratorRequestBody) (*models.Decorator, error) {
	specialties := make(types.JSONBArray, 0, len(body.Specialties))
	for _, s := range body.Specialties {
		specialties = append(specialties, s)
	}
	decorator := &models.Decorator{
		UserEmail:   email,
		Name:        body.Name,
		Specialties: specialties,
		Experience:  body.Experience,
		Phone:       body.Phone,
		Status:      types.DECORATOR_PENDING,
	}
	db := db.GetDb()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Decorator{}).
			Where(&models.Decorator{UserEmail: email}).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDecoratorExists
		}
		if err := tx.Create(decorator).Error; err != nil {
			return err
		}
		decorator.Slug = fmt.Sprintf("%s-%d", slug.Make(decorator.Name), decorator.ID)
		return tx.
			Model(decorator).
			Update("slug", decorator.Slug).
			Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDecoratorExists
	}
	if err != nil {
		return nil, err
	}
	return decorator, nil
}

func ListDecorators(ctx context.Context, status types.DecoratorStatus) ([]models.Decorator, error) {
	decorators := []models.Decorator{}
	db := db.GetDb()
	err := db.
		WithContext(ctx).
		Where(&models.Decorator{Status: status}).
		Order("id ASC").
		Find(&decorators).
		Error
	return decorators, err
}

// DecideDecorator approves or rejects a pending application. Approval promotes
// the applicant's user row to the decorator role in the same transaction.
func DecideDecorator(ctx context.Context, id uint, status types.DecoratorStatus) (*models.Decorator, error) {
	var decorator models.Decorator
	db := db.GetDb()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&decorator).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDecoratorNotFound
			}
			return err
		}
		if decorator.Status != types.DECORATOR_PENDING {
			return ErrDecoratorDecided
		}
		if err := tx.
			Model(&decorator).
			Update("status", status).
			Error; err != nil {
			return err
		}
		decorator.Status = status
		if status != types.DECORATOR_APPROVED {
			return nil
		}
		res := tx.
			Model(&models.User{}).
			Where(&models.User{Email: decorator.UserEmail}).
			Update("role", types.ROLE_DECORATOR)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("Decorator %d approved without a user profile for %s\n", decorator.ID, decorator.UserEmail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &decorator, nil
}
