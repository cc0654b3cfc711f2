// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-paperless/internal/service"
	"github.com/MKhiriev/go-paperless/internal/tui"
	"github.com/MKhiriev/go-paperless/models"
)

// UploadCommand uploads files as Paperless documents, one item per file.
type UploadCommand struct {
	*baseCommand

	flagField          string
	flagTitle          string
	flagCorrespondent  int64
	flagDocumentType   int64
	flagStoragePath    int64
	flagASN            string
	flagContinueOnFail bool
	flagProgress       bool
}

func (c *UploadCommand) Synopsis() string {
	return "Upload documents to Paperless-NGX"
}

func (c *UploadCommand) Help() string {
	c.registerFlags()
	return `Usage: paperless upload [options] FILE...

  Uploads every FILE, one after another, and prints one result per file.
  Without -continue-on-fail the first failure stops the run and no results
  are printed. With it, failed files produce {"error": ...} results and the
  command exits with code 2.` +
		c.flagsHelp()
}

func (c *UploadCommand) registerFlags() {
	if c.flags.Lookup("field") != nil {
		return
	}
	c.flags.StringVar(&c.flagField, "field", models.DefaultBinaryField, "Binary field name the file is stored under.")
	c.flags.StringVar(&c.flagTitle, "title", "", "Document title; defaults to the file name.")
	c.flags.Int64Var(&c.flagCorrespondent, "correspondent", 0, "Correspondent id.")
	c.flags.Int64Var(&c.flagDocumentType, "document-type", 0, "Document type id.")
	c.flags.Int64Var(&c.flagStoragePath, "storage-path", 0, "Storage path id.")
	c.flags.StringVar(&c.flagASN, "asn", "", "Archive serial number.")
	c.flags.BoolVar(&c.flagContinueOnFail, "continue-on-fail", false, "Record failed files and go on.")
	c.flags.BoolVar(&c.flagProgress, "progress", false, "Show an interactive progress view.")
}

func (c *UploadCommand) Run(args []string) int {
	c.registerFlags()
	if !c.parse(args) {
		return ExitError
	}

	files := c.flags.Args()
	if len(files) == 0 {
		c.ui.Error("at least one FILE is required")
		return ExitError
	}

	rt, err := c.setup(true, false)
	if err != nil {
		c.ui.Error(err.Error())
		return ExitError
	}
	defer rt.Close()

	items := make([]models.UploadItem, 0, len(files))
	for _, f := range files {
		item, err := c.itemFromFile(f)
		if err != nil {
			if !c.flagContinueOnFail {
				c.ui.Error(err.Error())
				return ExitError
			}
			rt.logger.Warn().Err(err).Str("file", f).Msg("file unreadable, recording it as a failed item")
			item = c.itemWithMetadata(models.UploadItem{SourceErr: err})
		}
		items = append(items, item)
	}

	opts := models.UploadOptions{
		BinaryField:    c.flagField,
		ContinueOnFail: c.flagContinueOnFail,
		RunID:          rt.runID,
	}

	var results []models.UploadResult
	if c.flagProgress {
		results, err = tui.New(rt.services.UploadService, rt.logger).RunUpload(rt.ctx, items, opts)
	} else {
		results, err = rt.services.UploadService.Upload(rt.ctx, items, opts)
	}

	if results != nil {
		if perr := c.printJSON(results); perr != nil {
			c.ui.Error(perr.Error())
			return ExitError
		}
	}
	if err != nil {
		c.ui.Error(err.Error())
		if errors.Is(err, service.ErrRecordingJournal) {
			c.ui.Warn(fmt.Sprintf("run %s finished but was not recorded", rt.runID))
		}
		return ExitError
	}

	if failures := models.UploadResults(results).Err(); failures != nil {
		c.ui.Warn(failures.Error())
		return ExitPartialFailure
	}
	return ExitOK
}

func (c *UploadCommand) itemFromFile(path string) (models.UploadItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadItem{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	return c.itemWithMetadata(models.UploadItem{
		Binary: map[string]models.BinaryData{
			c.flagField: {FileName: name, MimeType: detectMimeType(name, data), Data: data},
		},
	}), nil
}

func (c *UploadCommand) itemWithMetadata(item models.UploadItem) models.UploadItem {
	item.Title = c.flagTitle
	item.Correspondent = c.flagCorrespondent
	item.DocumentType = c.flagDocumentType
	item.StoragePath = c.flagStoragePath
	item.ArchiveSerialNumber = c.flagASN
	return item
}

func detectMimeType(name string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}
