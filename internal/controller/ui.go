// Package controller renders scan sessions for the terminal.
package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

// Format selects how SimpleUI prints.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts "table" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds renderer settings.
type Config struct {
	format Format
	input  io.Reader
}

// WithFormat sets the output format of the plain renderer.
func WithFormat(f Format) Option {
	return func(c *Config) {
		c.format = f
	}
}

// WithInput sets where the interactive pager reads keys from.
func WithInput(r io.Reader) Option {
	return func(c *Config) {
		c.input = r
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{format: FormatTable}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// PageSource is the part of a scan session a pager drives.
type PageSource interface {
	Snapshot() domain.Snapshot
	FetchPage(ctx context.Context, page int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Select(indices ...int) error
}

// UI displays processes, catalogs, result pages and write outcomes.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayProcesses(procs []m.ProcessView) error
	DisplayTypes(values []domain.ValueTypeDescriptor, scans []domain.ScanTypeDescriptor) error
	DisplayPage(snap domain.Snapshot) error
	DisplayWriteResult(result m.WriteBatchResult) error
	// Browse lets the user page through src until they quit.
	Browse(ctx context.Context, src PageSource) error
}

var _ PageSource = (*domain.ScanSession)(nil)
