// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/mitchellh/cli"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/models"
)

// Exit codes returned by [App.Run].
const (
	ExitOK = 0
	// ExitError means the command failed.
	ExitError = 1
	// ExitPartialFailure means an upload run finished with tolerated item
	// failures.
	ExitPartialFailure = 2
)

type App struct {
	ctx       context.Context
	name      string
	buildInfo models.AppBuildInfo
	ui        cli.Ui
	logger    *logger.Logger
}

func NewApp(ctx context.Context, name string, buildInfo models.AppBuildInfo, ui cli.Ui, logger *logger.Logger) *App {
	return &App{
		ctx:       ctx,
		name:      name,
		buildInfo: buildInfo,
		ui:        ui,
		logger:    logger,
	}
}

// Run dispatches args (without the program name) to a subcommand.
func (a *App) Run(args []string) int {
	if len(args) == 1 && (args[0] == "-version" || args[0] == "-v") {
		args = []string{"version"}
	}

	c := &cli.CLI{
		Name:     a.name,
		Args:     args,
		Version:  a.buildInfo.BuildVersion(),
		Commands: a.commands(),
	}

	exitCode, err := c.Run()
	if err != nil {
		a.ui.Error(err.Error())
		return ExitError
	}

	return exitCode
}

func (a *App) commands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"request": func() (cli.Command, error) {
			return &RequestCommand{baseCommand: a.newBaseCommand("request")}, nil
		},
		"upload": func() (cli.Command, error) {
			return &UploadCommand{baseCommand: a.newBaseCommand("upload")}, nil
		},
		"history": func() (cli.Command, error) {
			return &HistoryCommand{baseCommand: a.newBaseCommand("history")}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{app: a}, nil
		},
	}
}
