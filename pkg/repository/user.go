package repository

import (
	"context"

	"droscher.com/TableScout/pkg/model"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &user, nil
}
