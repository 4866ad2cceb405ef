// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenConfirmDelete
	screenBuildInfo
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type catalogModel struct {
	ctx       context.Context
	catalog   service.ClientCatalogService
	buildInfo models.BuildInfo
	logger    *logger.Logger

	screen   screen
	page     models.PageResult[models.Wine]
	pageNo   int
	pageSize int
	idx      int

	nameFilter  string
	filterInput textinput.Model
	filtering   bool

	loading       bool
	spinner       spinner.Model
	status        string
	errMsg        string
	serverVersion string
}

func newCatalogModel(ctx context.Context, catalog service.ClientCatalogService, buildInfo models.BuildInfo, pageSize int, logger *logger.Logger) catalogModel {
	input := textinput.New()
	input.Placeholder = "name contains..."
	input.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return catalogModel{
		ctx:         ctx,
		catalog:     catalog,
		buildInfo:   buildInfo,
		logger:      logger,
		pageNo:      models.DefaultPage,
		pageSize:    pageSize,
		filterInput: input,
		spinner:     s,
		loading:     true,
	}
}

func (m catalogModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPage(), m.cmdLoadVersion(), m.spinner.Tick)
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		m.idx = clamp(m.idx, len(m.page.Content))
		return m, nil
	case wineDeletedMsg:
		if msg.err != nil {
			m.errMsg = "Delete failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %s", msg.id)
		m.errMsg = ""
		// stepping back keeps the cursor on a page that still exists
		if len(m.page.Content) == 1 && m.pageNo > 1 {
			m.pageNo--
		}
		m.loading = true
		return m, m.cmdLoadPage()
	case versionLoadedMsg:
		if msg.err != nil {
			m.serverVersion = models.NotAvailable
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "ID copied to clipboard"
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirm(keyMsg)
	case screenBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.screen = screenList
		}
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m catalogModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Content)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.pageNo < m.page.TotalPages {
			m.pageNo++
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case key.Matches(msg, keys.prevPage):
		if m.pageNo > 1 {
			m.pageNo--
			m.idx = 0
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadPage()
	case key.Matches(msg, keys.filter):
		m.filtering = true
		m.filterInput.SetValue(m.nameFilter)
		return m, m.filterInput.Focus()
	case key.Matches(msg, keys.info):
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.screen = screenConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyID()
	}
	return m, nil
}

func (m catalogModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filterInput.Blur()
		m.nameFilter = m.filterInput.Value()
		m.pageNo = models.DefaultPage
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadPage()
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m catalogModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), msg.String() == "q":
		m.screen = screenList
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyID()
	case key.Matches(msg, keys.delete):
		m.screen = screenConfirmDelete
	}
	return m, nil
}

func (m catalogModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		wine, ok := m.current()
		m.screen = screenList
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(wine)
	case key.Matches(msg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

func (m catalogModel) current() (models.Wine, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Content) {
		return models.Wine{}, false
	}
	return m.page.Content[m.idx], true
}

// criteria returns the listing filter of the current name query.
func (m catalogModel) criteria() models.SearchCriteria {
	if m.nameFilter == "" {
		return models.SearchCriteria{}
	}
	return models.SearchCriteria{Name: utils.Ptr(m.nameFilter)}
}

func (m catalogModel) cmdLoadPage() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	criteria := m.criteria()
	pageRequest := models.PageRequest{Page: m.pageNo, Size: m.pageSize}

	return func() tea.Msg {
		page, err := catalog.Browse(ctx, criteria, pageRequest)
		return pageLoadedMsg{page: page, err: err}
	}
}

func (m catalogModel) cmdLoadVersion() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		version, err := catalog.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m catalogModel) cmdDelete(wine models.Wine) tea.Cmd {
	ctx, catalog, log := m.ctx, m.catalog, m.logger
	return func() tea.Msg {
		err := catalog.Delete(ctx, wine.ID)
		if err != nil {
			log.Err(err).Str("func", "catalogModel.cmdDelete").Str("id", wine.ID.String()).Msg("error deleting wine")
		}
		return wineDeletedMsg{id: wine.ID, err: err}
	}
}

func (m catalogModel) cmdCopyID() tea.Cmd {
	wine, ok := m.current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if err := writeClipboard(wine.ID.String()); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clamp(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
