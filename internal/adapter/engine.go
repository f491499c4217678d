// Package adapter connects scanctl to the external scanning engine.
package adapter

import (
	"context"
	"fmt"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// EngineClient is the command surface of the external scanning engine.
// Every call is a single request and a single response. Implementations
// must not retry: scans are not idempotent.
type EngineClient interface {
	// GetProcesses lists the processes the engine can open.
	GetProcesses(ctx context.Context) ([]m.ProcessView, error)

	// GetOpenedProcess returns the process the engine currently holds, or nil.
	GetOpenedProcess(ctx context.Context) (*m.ProcessView, error)

	// FirstScan opens pid and runs an initial scan over its writable memory.
	FirstScan(ctx context.Context, valueType m.ValueType, pid uint32, info m.ScanInfo) error

	// NextScan narrows the last scan.
	NextScan(ctx context.Context, valueType m.ValueType, info m.ScanInfo) error

	// UndoScan asks the engine to step back one scan generation.
	UndoScan(ctx context.Context, valueType m.ValueType) error

	// GetLastScan returns the total location count and one page of regions.
	GetLastScan(ctx context.Context, valueType m.ValueType, limit, offset int) (m.ScanPage, error)

	// ClearLastScan drops the engine's scan results.
	ClearLastScan(ctx context.Context) error

	// WriteMemory writes value at address in the opened process. A nil
	// count means the engine wrote nothing.
	WriteMemory(ctx context.Context, valueType m.ValueType, address uint64, value m.Value) (*int, error)
}

// Engine command names.
const (
	CmdGetProcesses     = "get_processes"
	CmdGetOpenedProcess = "get_opened_process"
	CmdClearLastScan    = "clear_last_scan"
)

// FirstScanCommand returns the first-scan command for vt.
func FirstScanCommand(vt m.ValueType) string { return typed("first_scan", vt) }

// NextScanCommand returns the next-scan command for vt.
func NextScanCommand(vt m.ValueType) string { return typed("next_scan", vt) }

// UndoScanCommand returns the undo command for vt.
func UndoScanCommand(vt m.ValueType) string { return typed("undo_scan", vt) }

// GetLastScanCommand returns the page-fetch command for vt.
func GetLastScanCommand(vt m.ValueType) string { return typed("get_last_scan", vt) }

// WriteMemoryCommand returns the write command for vt.
func WriteMemoryCommand(vt m.ValueType) string {
	return typed("write_opened_process_memory", vt)
}

func typed(prefix string, vt m.ValueType) string {
	return fmt.Sprintf("%s_%s", prefix, vt)
}
