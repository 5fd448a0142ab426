package cmd

import (
	"github.com/achilleasa/whitted/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// Resolve the log level from the global flags. The -v and -vv shortcuts
// take precedence over -log-level.
func logLevel(ctx *cli.Context) (log.Level, error) {
	switch {
	case ctx.GlobalBool("vv"):
		return log.Debug, nil
	case ctx.GlobalBool("v"):
		return log.Info, nil
	case ctx.GlobalString("log-level") == "":
		return log.Notice, nil
	}
	return log.ParseLevel(ctx.GlobalString("log-level"))
}

func setupLogging(ctx *cli.Context) error {
	level, err := logLevel(ctx)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
