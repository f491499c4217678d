package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

func newTestSimpleUI(opts ...Option) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, opts...), &buf
}

func sampleSnapshot() domain.Snapshot {
	cursor := domain.NewPaginationCursor(2)
	cursor.Total = 3

	return domain.Snapshot{
		ID:        "sess-1",
		Process:   &m.ProcessView{PID: 4242, Name: "game.exe"},
		State:     m.AfterInitialScan,
		ScanType:  m.ScanExact,
		ValueType: m.I32,
		Results: []m.Address{
			{Pointer: 0x1000, Value: "100"},
			{Pointer: 0x1004, Value: "100"},
		},
		Selection: []int{1},
		Cursor:    cursor,
		Gaps:      []domain.DecodeGap{{Index: 2, Tag: "ExcludedRange", Reason: "unrecognised encoding"}},
	}
}

func TestSimpleUI_DisplayPage_Table(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayPage(sampleSnapshot()))

	out := buf.String()
	for _, want := range []string{
		"Exact scan over i32 in game.exe (4242): 3 result(s)",
		"0x1000",
		"0x1004",
		"*1",
		"PAGE 1/2",
		"skipped region 2 (ExcludedRange)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplayPage_YAML(t *testing.T) {
	ui, buf := newTestSimpleUI(WithFormat(FormatYAML))

	require.NoError(t, ui.DisplayPage(sampleSnapshot()))

	var got pageView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "sess-1", got.Session)
	assert.Equal(t, uint32(4242), got.PID)
	assert.Equal(t, "i32", got.ValueType)
	assert.Equal(t, 2, got.Pages)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "0x1004", got.Rows[1].Address)
	assert.True(t, got.Rows[1].Selected)
	assert.Len(t, got.Gaps, 1)
}

func TestSimpleUI_DisplayPage_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayPage(domain.Snapshot{ScanType: m.ScanExact, ValueType: m.U8}))

	assert.Contains(t, buf.String(), "No results on this page")
}

func TestSimpleUI_DisplayProcesses(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayProcesses([]m.ProcessView{{PID: 1, Name: "init"}, {PID: 4242, Name: "game.exe"}}))
	assert.Contains(t, buf.String(), "game.exe")
	assert.Contains(t, buf.String(), "4242")

	buf.Reset()
	require.NoError(t, ui.DisplayProcesses(nil))
	assert.Contains(t, buf.String(), "No processes found")
}

func TestSimpleUI_DisplayTypes(t *testing.T) {
	ui, buf := newTestSimpleUI()

	values := domain.NewValueTypeRegistry().All()
	scans := domain.NewScanTypeRegistry().All()

	require.NoError(t, ui.DisplayTypes(values, scans))

	out := buf.String()
	for _, want := range []string{"-2147483648", "18446744073709551616", "InRange", "next scan", "first scan", "always"} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplayTypes_YAML(t *testing.T) {
	ui, buf := newTestSimpleUI(WithFormat(FormatYAML))

	require.NoError(t, ui.DisplayTypes(domain.NewValueTypeRegistry().All(), domain.NewScanTypeRegistry().All()))

	var got struct {
		ValueTypes []valueTypeView `yaml:"value_types"`
		ScanTypes  []scanTypeView  `yaml:"scan_types"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Len(t, got.ValueTypes, 10)
	assert.Len(t, got.ScanTypes, 11)
	assert.Equal(t, "integer", got.ValueTypes[0].Validator)
}

func TestSimpleUI_DisplayWriteResult(t *testing.T) {
	ui, buf := newTestSimpleUI()

	result := m.WriteBatchResult{Outcomes: []m.WriteOutcome{
		{Address: m.Address{Pointer: 0x10, Value: "5"}, Status: m.WriteOK, BytesWritten: 4},
		{Address: m.Address{Pointer: 0x14}, Status: m.WriteError, Err: errors.New("page fault")},
	}}

	require.NoError(t, ui.DisplayWriteResult(result))

	out := buf.String()
	assert.Contains(t, out, "0x10")
	assert.Contains(t, out, "page fault")
	assert.Contains(t, out, "1/2 WRITTEN")
}

type staticPages struct {
	snap domain.Snapshot
}

func (s *staticPages) Snapshot() domain.Snapshot                 { return s.snap }
func (s *staticPages) FetchPage(_ context.Context, _ int) error { return nil }
func (s *staticPages) NextPage(_ context.Context) error         { return nil }
func (s *staticPages) PrevPage(_ context.Context) error         { return nil }
func (s *staticPages) Select(_ ...int) error                    { return nil }

func TestSimpleUI_BrowsePrintsCurrentPage(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.Browse(context.Background(), &staticPages{snap: sampleSnapshot()}))
	assert.Contains(t, buf.String(), "0x1000")
}
