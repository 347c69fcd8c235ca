package main

import (
	"log"
	"os"

	"github.com/kalulu/darasa/core"
	"github.com/kalulu/darasa/core/grading"
	"github.com/kalulu/darasa/services/logger"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up services
	logger = newLogger(std)

	// load the grading configuration; a malformed table is fatal here
	scale, err := grading.NewScaleFromConfig()
	errAndDie(err)
	bounds, err := core.WeightBounds()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		scale:  scale,
		bounds: bounds,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}

// newLogger reports to rollbar when a token is configured; plain console otherwise.
func newLogger(std *log.Logger) core.Logger {
	if core.Conf.GetString("rollbarToken") != "" {
		return logsvc.NewRollbarLogger(std)
	}
	return logsvc.NewConsoleLogger(std)
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
