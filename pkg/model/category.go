package model

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex"`
	SubCategories []SubCategory
}

type SubCategory struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex"`
	CategoryID  uint
	Restaurants []Restaurant

	Category Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// SubCategoryCover is a subcategory together with the image used to present it.
type SubCategoryCover struct {
	ID    uint
	Name  string
	Image string
}
