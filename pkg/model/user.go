package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Nickname            string
	Email               string `gorm:"uniqueIndex"`
	ProfileURL          string
	WishlistRestaurants []Restaurant `gorm:"many2many:wishlists;"`
	Reviews             []Review
}

// Wishlist is the join table behind User.WishlistRestaurants.
type Wishlist struct {
	UserID       uint `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    time.Time
}
