// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-paperless/models"
)

// HistoryCommand lists upload results stored in the journal.
type HistoryCommand struct {
	*baseCommand

	flagRun    string
	flagFailed bool
	flagLimit  uint64
}

func (c *HistoryCommand) Synopsis() string {
	return "List recorded upload results"
}

func (c *HistoryCommand) Help() string {
	c.registerFlags()
	return `Usage: paperless history [options]

  Lists upload results recorded in the journal, newest run first. Requires
  a journal DSN (-journal or JOURNAL_DSN).` +
		c.flagsHelp()
}

func (c *HistoryCommand) registerFlags() {
	if c.flags.Lookup("run") != nil {
		return
	}
	c.flags.StringVar(&c.flagRun, "run", "", "Only results of this run id.")
	c.flags.BoolVar(&c.flagFailed, "failed", false, "Only failed uploads.")
	c.flags.Uint64Var(&c.flagLimit, "limit", 0, "Maximum number of results; 0 lists all.")
}

func (c *HistoryCommand) Run(args []string) int {
	c.registerFlags()
	if !c.parse(args) {
		return ExitError
	}

	rt, err := c.setup(false, true)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	defer rt.Close()

	records, err := rt.services.HistoryService.List(rt.ctx, models.UploadFilter{
		RunID:      c.flagRun,
		FailedOnly: c.flagFailed,
		Limit:      c.flagLimit,
	})
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}

	if err = c.printJSON(records); err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	return ExitOK
}
