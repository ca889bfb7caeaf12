package common

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"styledecor/src/config"
	"styledecor/src/db"
	"styledecor/src/models"
	"styledecor/src/models/scopes"
	"styledecor/src/types"
	"styledecor/src/utils"

	"gorm.io/gorm"
)

func parsePrice(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price %q", ErrInvalidFilter, raw)
	}
	return &v, nil
}

// QueryServices filters, sorts and paginates the services collection. Total
// and TotalPages are computed over the filtered set.
func QueryServices(ctx context.Context, filters *types.ServiceQueryFilters) (*types.Page[models.Service], error) {
	minPrice, err := parsePrice(filters.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := parsePrice(filters.MaxPrice)
	if err != nil {
		return nil, err
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = config.DEFAULT_PAGE_LIMIT
	}
	if limit > config.MAX_PAGE_LIMIT {
		limit = config.MAX_PAGE_LIMIT
	}

	db := db.GetDb()
	filtered := func() *gorm.DB {
		return db.
			WithContext(ctx).
			Model(&models.Service{}).
			Scopes(
				scopes.WithTitleSearch(filters.Search),
				scopes.WithCategory(filters.Category),
				scopes.WithPriceRange(minPrice, maxPrice),
			)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, err
	}
	services := make([]models.Service, 0, limit)
	if err := filtered().
		Scopes(
			scopes.OrderByPrice(strings.EqualFold(filters.Sort, "desc")),
			scopes.Paginate(page, limit),
		).
		Find(&services).
		Error; err != nil {
		return nil, err
	}

	return &types.Page[models.Service]{
		Data:       services,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

// ListCategories returns every distinct non-empty category, ignoring filters.
func ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	db := db.GetDb()
	err := db.
		WithContext(ctx).
		Model(&models.Service{}).
		Where("category <> ?", "").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).
		Error
	return categories, err
}

func GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Scopes(scopes.WithID(id)).
		First(&service).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func CreateService(ctx context.Context, body *types.CreateServiceRequestBody) (*models.Service, error) {
	service := &models.Service{
		Title:       strings.TrimSpace(body.Title),
		Category:    strings.TrimSpace(body.Category),
		Price:       *body.Price,
		Description: body.Description,
		Image:       body.Image,
	}
	db := db.GetDb()
	if err := db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}
