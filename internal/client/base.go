// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/mitchellh/cli"

	"github.com/MKhiriev/go-paperless/internal/adapter"
	"github.com/MKhiriev/go-paperless/internal/config"
	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/service"
	"github.com/MKhiriev/go-paperless/internal/store"
	"github.com/MKhiriev/go-paperless/internal/utils"
)

// baseCommand carries what every subcommand shares: the UI, the logger and
// the configuration flags.
type baseCommand struct {
	app *App
	ui  cli.Ui

	flags       *flag.FlagSet
	configFlags *config.Flags
}

func (a *App) newBaseCommand(name string) *baseCommand {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return &baseCommand{
		app:         a,
		ui:          a.ui,
		flags:       fs,
		configFlags: config.RegisterFlags(fs),
	}
}

// flagsHelp renders the registered flags for Help().
func (c *baseCommand) flagsHelp() string {
	var buf bytes.Buffer
	c.flags.SetOutput(&buf)
	c.flags.PrintDefaults()
	c.flags.SetOutput(io.Discard)
	return "\n\nOptions:\n\n" + buf.String()
}

func (c *baseCommand) parse(args []string) bool {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return false
	}
	return true
}

// runtime is the wired application state of one command invocation.
type runtime struct {
	ctx      context.Context
	cfg      *config.StructuredConfig
	runID    string
	logger   *logger.Logger
	services *service.Services
	journal  *store.DB
}

func (r *runtime) Close() {
	if r.journal != nil {
		_ = r.journal.Close()
	}
}

// setup loads configuration and wires the services. needPaperless and
// needJournal name the parts the command cannot run without.
func (c *baseCommand) setup(needPaperless, needJournal bool) (*runtime, error) {
	cfg, err := config.Load(c.configFlags)
	if err != nil {
		return nil, err
	}
	if needPaperless {
		if err = cfg.RequirePaperless(); err != nil {
			return nil, err
		}
	}
	if needJournal {
		if err = cfg.RequireJournal(); err != nil {
			return nil, err
		}
	}

	log := c.app.logger.GetChildLogger()
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	runID := utils.NewUUIDGenerator().Generate()
	log = log.WithRunID(runID)
	ctx := utils.WithRunID(log.WithContext(c.app.ctx), runID)

	rt := &runtime{ctx: ctx, cfg: cfg, runID: runID, logger: log}

	var journal store.UploadJournal
	if cfg.Journal.DSN != "" {
		rt.journal, err = store.NewJournalDB(ctx, cfg.Journal.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("open upload journal: %w", err)
		}
		journal = store.NewUploadJournal(rt.journal, log)
	}

	var paperless adapter.PaperlessAdapter
	if needPaperless {
		paperless, err = adapter.NewHTTPPaperlessAdapter(cfg.Paperless, log)
		if err != nil {
			rt.Close()
			return nil, err
		}
	}

	rt.services = service.NewServices(paperless, journal, log)
	return rt, nil
}

func (c *baseCommand) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	c.ui.Output(string(out))
	return nil
}

func (c *baseCommand) printRawJSON(raw json.RawMessage) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		c.ui.Output("{}")
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	c.ui.Output(buf.String())
	return nil
}
