package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

// recordingPages serves one snapshot per page and records what the pager asked for.
type recordingPages struct {
	pages    map[int][]m.Address
	current  int
	total    int
	selected []int
	calls    []string
	fetchErr error
}

func newRecordingPages() *recordingPages {
	return &recordingPages{
		pages: map[int][]m.Address{
			1: {{Pointer: 0x10, Value: "1"}, {Pointer: 0x14, Value: "2"}},
			2: {{Pointer: 0x18, Value: "3"}},
		},
		current: 1,
		total:   3,
	}
}

func (r *recordingPages) Snapshot() domain.Snapshot {
	cursor := domain.NewPaginationCursor(2)
	cursor.Page = r.current
	cursor.Total = r.total

	return domain.Snapshot{
		State:     m.AfterInitialScan,
		ScanType:  m.ScanExact,
		ValueType: m.I32,
		Results:   r.pages[r.current],
		Selection: r.selected,
		Cursor:    cursor,
	}
}

func (r *recordingPages) FetchPage(_ context.Context, page int) error {
	r.calls = append(r.calls, "fetch")
	if r.fetchErr != nil {
		return r.fetchErr
	}

	r.current = page
	r.selected = nil

	return nil
}

func (r *recordingPages) NextPage(ctx context.Context) error {
	r.calls = append(r.calls, "next")
	return r.FetchPage(ctx, r.current+1)
}

func (r *recordingPages) PrevPage(ctx context.Context) error {
	r.calls = append(r.calls, "prev")
	return r.FetchPage(ctx, r.current-1)
}

func (r *recordingPages) Select(indices ...int) error {
	r.calls = append(r.calls, "select")
	r.selected = indices

	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends a key and runs any command it returns once, feeding the
// resulting message back into the model.
func press(t *testing.T, pm pagerModel, s string) pagerModel {
	t.Helper()

	model, cmd := pm.Update(keyMsg(s))
	pm = model.(pagerModel)

	if cmd == nil {
		return pm
	}

	switch msg := cmd().(type) {
	case pageLoadedMsg, selectionMsg:
		model, _ = pm.Update(msg)
		pm = model.(pagerModel)
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}

			if loaded, ok := c().(pageLoadedMsg); ok {
				model, _ = pm.Update(loaded)
				pm = model.(pagerModel)
			}
		}
	}

	return pm
}

func TestPagerModel_CursorMovement(t *testing.T) {
	pm := newPagerModel(context.Background(), newRecordingPages())

	pm = press(t, pm, "up")
	assert.Equal(t, 0, pm.cursor)

	pm = press(t, pm, "down")
	pm = press(t, pm, "down")
	assert.Equal(t, 1, pm.cursor)

	pm = press(t, pm, "k")
	assert.Equal(t, 0, pm.cursor)
}

func TestPagerModel_PagesThroughSession(t *testing.T) {
	src := newRecordingPages()
	pm := newPagerModel(context.Background(), src)
	pm = press(t, pm, "down")

	pm = press(t, pm, "n")
	assert.Equal(t, 2, pm.snap.Cursor.Page)
	assert.Equal(t, 0, pm.cursor, "cursor clamps to the shorter page")
	assert.False(t, pm.loading)

	// No page 3: the key is ignored.
	pm = press(t, pm, "n")
	assert.Equal(t, 2, pm.snap.Cursor.Page)

	pm = press(t, pm, "p")
	assert.Equal(t, 1, pm.snap.Cursor.Page)

	pm = press(t, pm, "r")
	assert.Equal(t, []string{"next", "fetch", "prev", "fetch", "fetch"}, src.calls)
}

func TestPagerModel_FetchErrorShownAsStatus(t *testing.T) {
	src := newRecordingPages()
	src.fetchErr = errors.New("engine went away")

	pm := newPagerModel(context.Background(), src)
	pm = press(t, pm, "r")

	assert.Equal(t, "engine went away", pm.status)
	assert.Contains(t, pm.View(), "engine went away")
}

func TestPagerModel_MarkTogglesSelection(t *testing.T) {
	src := newRecordingPages()
	pm := newPagerModel(context.Background(), src)

	pm = press(t, pm, "down")
	pm = press(t, pm, "space")
	assert.Equal(t, []int{1}, src.selected)
	assert.True(t, pm.marked[1])

	pm = press(t, pm, "up")
	pm = press(t, pm, "x")
	assert.Equal(t, []int{0, 1}, src.selected)

	pm = press(t, pm, "x")
	assert.Equal(t, []int{1}, src.selected)
	assert.False(t, pm.marked[0])
}

func TestPagerModel_Quit(t *testing.T) {
	pm := newPagerModel(context.Background(), newRecordingPages())

	_, cmd := pm.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPagerModel_View(t *testing.T) {
	pm := newPagerModel(context.Background(), newRecordingPages())

	model, _ := pm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := model.View()

	for _, want := range []string{"Exact scan over i32", "page 1/2", "0x10", "0x14", "next page", "quit"} {
		assert.Contains(t, view, want)
	}
}

func TestTUI_DisplayFunctions(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayProcesses([]m.ProcessView{{PID: 7, Name: "editor"}}))
	require.NoError(t, ui.DisplayTypes(domain.NewValueTypeRegistry().All(), domain.NewScanTypeRegistry().All()))
	require.NoError(t, ui.DisplayPage(sampleSnapshot()))
	require.NoError(t, ui.DisplayWriteResult(m.WriteBatchResult{Outcomes: []m.WriteOutcome{
		{Address: m.Address{Pointer: 0x20}, Status: m.WriteFailed},
	}}))

	out := buf.String()
	for _, want := range []string{"editor", "Value types", "IncreasedBy", "game.exe", "0x1004", "0x20", "0/1 written"} {
		assert.Contains(t, out, want)
	}
}

func TestTUI_DisplayProcessesEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTUI(&buf).DisplayProcesses(nil))
	assert.Contains(t, buf.String(), "No processes found")
}

func TestTUI_BrowseQuitsOnInput(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out, WithInput(bytes.NewBufferString("q")))

	require.NoError(t, ui.Browse(context.Background(), newRecordingPages()))
}
