// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-paperless/models"
)

// uploadModel shows one line per input file while an upload run progresses.
type uploadModel struct {
	spinner spinner.Model
	names   []string

	results []models.UploadResult
	done    bool
	err     error

	quitByUser bool
	status     string

	// replaced in tests
	copyToClipboard func(string) error
}

func newUploadModel(names []string) uploadModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return uploadModel{
		spinner:         s,
		names:           names,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m uploadModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			if !m.done {
				m.quitByUser = true
			}
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if !m.done {
				return m, nil
			}
			ids := m.documentIDs()
			if len(ids) == 0 {
				m.status = "no document ids to copy"
				return m, cmdClearStatus()
			}
			return m, m.cmdCopyToClipboard(ids)
		}

	case itemUploadedMsg:
		m.results = append(m.results, msg.result)
		return m, nil

	case uploadFinishedMsg:
		m.done = true
		m.err = msg.err
		if msg.results != nil {
			m.results = msg.results
		}
		return m, nil

	case copiedMsg:
		m.status = fmt.Sprintf("copied %d document id(s)", msg.count)
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = "copy failed: " + msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m uploadModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Uploading documents (%d/%d)", len(m.results), len(m.names))))
	b.WriteString("\n\n")

	resolved := make(map[int]models.UploadResult, len(m.results))
	for _, r := range m.results {
		resolved[r.PairedItem.Item] = r
	}

	for i, name := range m.names {
		r, ok := resolved[i]
		switch {
		case ok && r.Failed():
			b.WriteString(errorStyle.Render("✗ "+name) + "  " + r.Error)
		case ok:
			b.WriteString(okStyle.Render("✓ "+name) + "  " + r.DocumentID)
		case !m.done && i == len(m.results):
			b.WriteString(m.spinner.View() + " " + name)
		default:
			b.WriteString(pendingStyle.Render("· " + name))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("upload aborted: "+m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(helpStyle.Render("c copy document ids • q quit"))
	} else {
		b.WriteString(helpStyle.Render("q stop"))
	}

	return appStyle.Render(b.String())
}

func (m uploadModel) documentIDs() []string {
	ids := make([]string, 0, len(m.results))
	for _, r := range m.results {
		if !r.Failed() && r.DocumentID != "" {
			ids = append(ids, r.DocumentID)
		}
	}
	return ids
}

func (m uploadModel) cmdCopyToClipboard(ids []string) tea.Cmd {
	write := m.copyToClipboard
	return func() tea.Msg {
		if err := write(strings.Join(ids, "\n")); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{count: len(ids)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
