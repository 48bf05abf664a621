package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                    help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Token   TokenCmd   `cmd:"" help:"Issue an access token for a user"`
}

func newLogger(debug bool, production bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if production && !debug {
		logConfig = zap.NewProductionConfig()
	}

	logger, _ := logConfig.Build()

	return logger
}
