package server

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/repository"
)

type SubCategoryServer struct {
	logger                *zap.Logger
	subCategoryRepository repository.SubCategoryRepository
}

func NewSubCategoryServer(subCategoryRepo repository.SubCategoryRepository, logger *zap.Logger) *SubCategoryServer {
	return &SubCategoryServer{logger: logger, subCategoryRepository: subCategoryRepo}
}

func (s *SubCategoryServer) ListSubCategories(ctx context.Context) ([]*model.SubCategoryCover, error) {
	covers, err := s.subCategoryRepository.ListSubCategoryCovers(ctx)
	if err != nil {
		return nil, err
	}

	if len(covers) == 0 {
		return nil, ErrSubCategoryNotFound
	}

	s.logger.Debug("listed subcategories", zap.Int("count", len(covers)))

	return covers, nil
}
