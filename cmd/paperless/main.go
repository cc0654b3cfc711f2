// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"

	"github.com/MKhiriev/go-paperless/internal/client"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger("paperless")

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(ctx, "paperless", buildInfo, ui, log)

	return app.Run(os.Args[1:])
}
