package model

import "gorm.io/gorm"

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type Restaurant struct {
	gorm.Model
	Name          string `gorm:"index"`
	Address       string
	PhoneNumber   string
	Coordinate    Coordinate `gorm:"embedded;embeddedPrefix:coordinate_"`
	OpenTime      string
	SubCategoryID uint
	Foods         []Food
	Reviews       []Review

	SubCategory SubCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

type Food struct {
	gorm.Model
	Name         string
	Price        float64 `gorm:"type:numeric(10,2)"`
	RestaurantID uint    `gorm:"index"`
	Images       []Image

	Restaurant Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type Image struct {
	gorm.Model
	ImageURL string
	FoodID   uint `gorm:"index"`
}

// RestaurantSummary is one row of a restaurant listing. It is scanned from an aggregate
// query and never written back.
type RestaurantSummary struct {
	ID              uint
	Name            string
	Address         string
	PhoneNumber     string
	Coordinate      Coordinate `gorm:"embedded;embeddedPrefix:coordinate_"`
	OpenTime        string
	SubCategoryName string
	CategoryName    string
	AverageRating   *float64
	ReviewCount     int64
	Image           string `gorm:"-"`
}

type RestaurantDetail struct {
	Restaurant   Restaurant
	ReviewStats  ReviewStats
	AveragePrice *float64
	IsWished     bool
}
