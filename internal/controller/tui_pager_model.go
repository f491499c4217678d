package controller

import (
	"context"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/scanctl/internal/domain"
)

type pagerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Mark    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k pagerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Mark, k.Refresh, k.Quit}
}

func (k pagerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:    key.NewBinding(key.WithKeys("right", "n", "pgdown"), key.WithHelp("→/n", "next page")),
		Prev:    key.NewBinding(key.WithKeys("left", "p", "pgup"), key.WithHelp("←/p", "prev page")),
		Mark:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "mark")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// pagerModel pages through a session's results. Every page change goes
// through the session so the stale-page rules apply; the model only
// renders snapshots.
type pagerModel struct {
	ctx     context.Context
	src     PageSource
	snap    domain.Snapshot
	keys    pagerKeyMap
	help    help.Model
	spinner spinner.Model
	cursor  int
	marked  map[int]bool
	loading bool
	status  string
	width   int
}

func newPagerModel(ctx context.Context, src PageSource) pagerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	pm := pagerModel{
		ctx:     ctx,
		src:     src,
		keys:    newPagerKeyMap(),
		help:    help.New(),
		spinner: sp,
	}

	return pm.refreshSnapshot()
}

func (pm pagerModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.help.Width = msg.Width

		return pm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case pageLoadedMsg:
		pm.loading = false
		pm.status = ""

		if msg.err != nil {
			pm.status = msg.err.Error()
		}

		return pm.refreshSnapshot(), nil

	case selectionMsg:
		if msg.err != nil {
			pm.status = msg.err.Error()
		}

		return pm.refreshSnapshot(), nil

	case tea.KeyMsg:
		return pm.handleKey(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		return pm, tea.Quit
	case pm.loading:
		return pm, nil
	case key.Matches(msg, pm.keys.Up):
		if pm.cursor > 0 {
			pm.cursor--
		}
	case key.Matches(msg, pm.keys.Down):
		if pm.cursor < len(pm.snap.Results)-1 {
			pm.cursor++
		}
	case key.Matches(msg, pm.keys.Next):
		if pm.snap.Cursor.HasNext() {
			return pm.fetch(pm.src.NextPage)
		}
	case key.Matches(msg, pm.keys.Prev):
		if pm.snap.Cursor.HasPrev() {
			return pm.fetch(pm.src.PrevPage)
		}
	case key.Matches(msg, pm.keys.Refresh):
		page := pm.snap.Cursor.Page

		return pm.fetch(func(ctx context.Context) error {
			return pm.src.FetchPage(ctx, page)
		})
	case key.Matches(msg, pm.keys.Mark):
		return pm.toggleMark()
	}

	return pm, nil
}

func (pm pagerModel) fetch(fn func(context.Context) error) (tea.Model, tea.Cmd) {
	pm.loading = true
	ctx := pm.ctx

	return pm, tea.Batch(pm.spinner.Tick, func() tea.Msg {
		return pageLoadedMsg{err: fn(ctx)}
	})
}

func (pm pagerModel) toggleMark() (tea.Model, tea.Cmd) {
	if len(pm.snap.Results) == 0 {
		return pm, nil
	}

	marked := make(map[int]bool, len(pm.marked)+1)
	for i := range pm.marked {
		marked[i] = true
	}

	if marked[pm.cursor] {
		delete(marked, pm.cursor)
	} else {
		marked[pm.cursor] = true
	}

	indices := make([]int, 0, len(marked))
	for i := range marked {
		indices = append(indices, i)
	}

	sort.Ints(indices)

	src := pm.src

	return pm, func() tea.Msg {
		return selectionMsg{err: src.Select(indices...)}
	}
}

// refreshSnapshot reloads the snapshot and clamps the cursor to the page.
func (pm pagerModel) refreshSnapshot() pagerModel {
	pm.snap = pm.src.Snapshot()

	pm.marked = make(map[int]bool, len(pm.snap.Selection))
	for _, i := range pm.snap.Selection {
		pm.marked[i] = true
	}

	if pm.cursor >= len(pm.snap.Results) {
		pm.cursor = max(len(pm.snap.Results)-1, 0)
	}

	return pm
}

func (pm pagerModel) View() string {
	parts := []string{renderPage(pm.snap, pm.cursor)}

	switch {
	case pm.loading:
		parts = append(parts, pm.spinner.View()+" loading…")
	case pm.status != "":
		parts = append(parts, failStyle.Render(pm.status))
	}

	parts = append(parts, pm.help.View(pm.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
