package repository

import (
	"context"

	"droscher.com/TableScout/pkg/model"
)

type SubCategoryRepository interface {
	ListSubCategoryCovers(ctx context.Context) ([]*model.SubCategoryCover, error)
}

// ListSubCategoryCovers picks, per subcategory, the first image found walking restaurants,
// foods and images in id order. Subcategories without any such image are left out.
func (r *Repository) ListSubCategoryCovers(ctx context.Context) ([]*model.SubCategoryCover, error) {
	var covers []*model.SubCategoryCover

	result := r.DB.WithContext(ctx).Table("sub_categories").
		Select("DISTINCT ON (sub_categories.id) sub_categories.id, sub_categories.name, images.image_url as image").
		Joins("INNER JOIN restaurants on restaurants.sub_category_id = sub_categories.id AND restaurants.deleted_at is null").
		Joins("INNER JOIN foods on foods.restaurant_id = restaurants.id AND foods.deleted_at is null").
		Joins("INNER JOIN images on images.food_id = foods.id AND images.deleted_at is null AND images.image_url <> ''").
		Where("sub_categories.deleted_at is null").
		Order("sub_categories.id, restaurants.id, foods.id, images.id").
		Scan(&covers)
	if result.Error != nil {
		return nil, result.Error
	}

	return covers, nil
}
