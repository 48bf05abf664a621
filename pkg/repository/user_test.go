package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/TableScout/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserByID_FindsUser() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "email", "profile_url"}).
			AddRow(7, "foodie", "foodie@example.com", "https://img/foodie.png"))

	user, err := suite.repository.GetUserByID(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(uint(7), user.ID)
	suite.Equal("foodie", user.Nickname)
}

func (suite *UserTestSuite) TestGetUserByID_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	user, err := suite.repository.GetUserByID(context.Background(), 100)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(user)
	suite.Equal(1, suite.observedLogs.Len())

	errorLog := suite.observedLogs.All()[0]
	suite.Equal("record not found", errorLog.ContextMap()["error"])
}
