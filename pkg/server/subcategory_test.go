package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"droscher.com/TableScout/mocks"
	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/server"
)

type SubCategoryTestSuite struct {
	suite.Suite
	subCategoryRepo *mocks.SubCategoryRepository
	service         *server.SubCategoryServer
}

func TestSubCategoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubCategoryTestSuite))
}

func (suite *SubCategoryTestSuite) SetupTest() {
	suite.subCategoryRepo = mocks.NewSubCategoryRepository(suite.T())
	suite.service = server.NewSubCategoryServer(suite.subCategoryRepo, zap.NewNop())
}

func (suite *SubCategoryTestSuite) TestListSubCategories() {
	ctx := context.Background()
	covers := []*model.SubCategoryCover{
		{ID: 1, Name: "Pasta", Image: "https://img/carbonara.jpg"},
		{ID: 2, Name: "Ramen", Image: "https://img/ramen.jpg"},
	}

	suite.subCategoryRepo.EXPECT().ListSubCategoryCovers(ctx).Return(covers, nil)

	result, err := suite.service.ListSubCategories(ctx)
	suite.Require().NoError(err)
	suite.Equal(covers, result)
}

func (suite *SubCategoryTestSuite) TestListSubCategories_NoneIsNotFound() {
	ctx := context.Background()

	suite.subCategoryRepo.EXPECT().ListSubCategoryCovers(ctx).Return([]*model.SubCategoryCover{}, nil)

	result, err := suite.service.ListSubCategories(ctx)
	suite.Require().ErrorIs(err, server.ErrSubCategoryNotFound)
	suite.Nil(result)
}
