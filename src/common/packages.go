package common

import (
	"context"
	"styledecor/src/db"
	"styledecor/src/models"
	"styledecor/src/types"
)

func ListPackages(ctx context.Context) ([]models.Package, error) {
	packages := []models.Package{}
	db := db.GetDb()
	err := db.WithContext(ctx).Order("id ASC").Find(&packages).Error
	return packages, err
}

func CreatePackage(ctx context.Context, body *types.CreatePackageRequestBody) (*types.InsertResult, error) {
	features := make(types.JSONBArray, 0, len(body.Features))
	for _, f := range body.Features {
		features = append(features, f)
	}
	pkg := &models.Package{
		Title:       body.Title,
		Description: body.Description,
		Price:       *body.Price,
		Image:       body.Image,
		Features:    features,
	}
	db := db.GetDb()
	if err := db.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, err
	}
	return &types.InsertResult{Acknowledged: true, InsertedID: pkg.ID}, nil
}
