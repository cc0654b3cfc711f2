// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-paperless/internal/service"
)

type VersionCommand struct {
	app *App
}

func (c *VersionCommand) Synopsis() string {
	return "Print build information"
}

func (c *VersionCommand) Help() string {
	return `Usage: paperless version

  Prints the build version, date and commit.`
}

func (c *VersionCommand) Run(_ []string) int {
	info, err := service.NewAppInfoService(c.app.buildInfo, c.app.logger)
	if errors.Is(err, service.ErrVersionIsNotSpecified) {
		c.app.ui.Warn("development build")
		c.app.ui.Output(strings.TrimSuffix(c.app.buildInfo.String(), "\n"))
		return ExitOK
	}
	if err != nil {
		c.app.ui.Error(err.Error())
		return ExitError
	}

	c.app.ui.Output(strings.TrimSuffix(info.GetBuildInfo(c.app.ctx).String(), "\n"))
	return ExitOK
}
