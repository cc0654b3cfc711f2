// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders upload progress in the terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/service"
	"github.com/MKhiriev/go-paperless/models"
)

var ErrUserQuit = errors.New("upload stopped by user")

type TUI struct {
	uploads service.UploadService
	output  io.Writer
	logger  *logger.Logger
}

// New returns a TUI drawing to stderr so stdout stays free for results.
func New(uploads service.UploadService, logger *logger.Logger) *TUI {
	return &TUI{uploads: uploads, output: os.Stderr, logger: logger}
}

// RunUpload runs the upload in the background and shows its progress until
// the user quits. Quitting before the run ends cancels it and returns
// ErrUserQuit together with whatever the service returned.
func (t *TUI) RunUpload(ctx context.Context, items []models.UploadItem, opts models.UploadOptions) ([]models.UploadResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newUploadModel(itemNames(items, opts.BinaryField)),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
	)

	observer := opts.Observer
	opts.Observer = func(r models.UploadResult) {
		if observer != nil {
			observer(r)
		}
		p.Send(itemUploadedMsg{result: r})
	}

	type outcome struct {
		results []models.UploadResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := t.uploads.Upload(ctx, items, opts)
		done <- outcome{results: results, err: err}
		p.Send(uploadFinishedMsg{results: results, err: err})
	}()

	finalModel, runErr := p.Run()
	cancel()
	res := <-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		t.logger.Err(runErr).Str("func", "*TUI.RunUpload").Msg("progress view failed")
	}
	if m, ok := finalModel.(uploadModel); ok && m.quitByUser {
		return res.results, errors.Join(ErrUserQuit, res.err)
	}

	return res.results, res.err
}

func itemNames(items []models.UploadItem, field string) []string {
	if field == "" {
		field = models.DefaultBinaryField
	}
	names := make([]string, len(items))
	for i, item := range items {
		if b, ok := item.Binary[field]; ok && b.FileName != "" {
			names[i] = b.FileName
			continue
		}
		names[i] = fmt.Sprintf("item %d", i)
	}
	return names
}
