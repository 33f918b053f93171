/*
Package main is the entry point for feedbackctl.

feedbackctl is the operator's CLI for the feedback relay. It reads the
same configuration as the server (.env.cli in development) and talks to
Postgres, Redis and GitHub directly.

Usage:

	feedbackctl [command]

Available Commands:

	migrate     Apply pending database migrations
	feedback    Inspect and curate stored feedback
	reactions   Summarize reactions per interview and version
	panelists   List people who joined the research panel
	link        Print a link to the feedback interview
	check-repo  Check that issues can be filed in a repository
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/cli"
)

// Version information (set via ldflags during build)
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logger.SetupWriter(cfg, os.Stderr)

	runtime, err := cli.NewRuntime(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = cli.NewRootCmd(runtime, version).ExecuteContext(ctx)
	runtime.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
