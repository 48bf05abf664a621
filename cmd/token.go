package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/TableScout/configs"
	"droscher.com/TableScout/pkg/auth"
	"droscher.com/TableScout/pkg/repository"
)

type TokenCmd struct {
	ConfigFile string        `default:".TableScout.toml" help:"Path to config file" short:"c"`
	UserID     uint          `arg:""                     help:"Id of the user the token is issued to"`
	TTL        time.Duration `default:"24h"              help:"How long the token stays valid"`
}

func (t *TokenCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug, false)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(t.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	user, err := repo.GetUserByID(context.Background(), t.UserID)
	if err != nil {
		logger.Error("error loading user", zap.Uint("user_id", t.UserID), zap.Error(err))

		return err
	}

	token, err := auth.NewAuthManager(conf, repo, logger).IssueToken(user.ID, t.TTL)
	if err != nil {
		return err
	}

	fmt.Println(token) //nolint:forbidigo // the token is the command output

	return nil
}
