// Package domain holds the scan session state machine and the registries,
// sanitizer, decoder and cursor it is built from.
package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scanctl/internal/adapter"
	"github.com/mouse-blink/scanctl/internal/logging"
	m "github.com/mouse-blink/scanctl/internal/model"
)

const (
	defaultPageSize         = 100
	defaultWriteParallelism = 8
)

// SessionOption is a functional option for NewScanSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger           logging.Logger
	pageSize         int
	writeParallelism int
	valueType        m.ValueType
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l logging.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = l
	}
}

// WithPageSize sets the number of rows fetched per page.
func WithPageSize(n int) SessionOption {
	return func(c *sessionConfig) {
		c.pageSize = n
	}
}

// WithWriteParallelism bounds how many writes of a batch run at once.
func WithWriteParallelism(n int) SessionOption {
	return func(c *sessionConfig) {
		c.writeParallelism = n
	}
}

// WithValueType sets the initially selected value type.
func WithValueType(vt m.ValueType) SessionOption {
	return func(c *sessionConfig) {
		c.valueType = vt
	}
}

// Snapshot is a copy of the session state safe to hand to renderers.
type Snapshot struct {
	ID        string
	Process   *m.ProcessView
	State     m.LifecycleState
	ScanType  m.ScanType
	ValueType m.ValueType
	Operand   m.Operand
	Results   []m.Address
	Selection []int
	Cursor    PaginationCursor
	Gaps      []DecodeGap
}

// ScanSession drives one scan workflow against the engine. It is owned by
// its caller and is not reentrant: lifecycle calls (FirstScan, NextScan,
// UndoScan, NewScan) that overlap fail with ErrSessionBusy. Engine calls run
// without the state lock held; state only changes once the engine has
// acknowledged the command.
type ScanSession struct {
	id        string
	engine    adapter.EngineClient
	values    *ValueTypeRegistry
	scans     *ScanTypeRegistry
	sanitizer *RequestSanitizer
	decoder   ResultDecoder
	logger    logging.Logger
	parallel  int

	busy atomic.Bool

	mu        sync.Mutex
	process   *m.ProcessView
	state     m.LifecycleState
	scanType  m.ScanType
	valueType m.ValueType
	operand   m.Operand
	results   []m.Address
	selection []int
	cursor    PaginationCursor
	fetchSeq  uint64
	gaps      []DecodeGap
}

// NewScanSession builds a session with no process opened.
func NewScanSession(engine adapter.EngineClient, opts ...SessionOption) (*ScanSession, error) {
	cfg := sessionConfig{
		logger:           logging.NoOpLogger{},
		pageSize:         defaultPageSize,
		writeParallelism: defaultWriteParallelism,
		valueType:        m.I32,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if engine == nil {
		return nil, fmt.Errorf("engine client is nil")
	}

	if cfg.pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", cfg.pageSize)
	}

	if cfg.writeParallelism <= 0 {
		cfg.writeParallelism = 1
	}

	values := NewValueTypeRegistry()
	if _, err := values.Describe(cfg.valueType); err != nil {
		return nil, err
	}

	scans := NewScanTypeRegistry()
	id := uuid.NewString()

	return &ScanSession{
		id:        id,
		engine:    engine,
		values:    values,
		scans:     scans,
		sanitizer: NewRequestSanitizer(scans),
		logger:    logging.With(cfg.logger, "session", id),
		parallel:  cfg.writeParallelism,
		scanType:  DefaultScanType,
		valueType: cfg.valueType,
		operand:   emptyOperandFor(1),
		cursor:    NewPaginationCursor(cfg.pageSize),
	}, nil
}

// ID returns the session identifier used in logs.
func (s *ScanSession) ID() string {
	return s.id
}

// ValueTypes returns the value type catalog.
func (s *ScanSession) ValueTypes() *ValueTypeRegistry {
	return s.values
}

// ScanTypes returns the scan type catalog.
func (s *ScanSession) ScanTypes() *ScanTypeRegistry {
	return s.scans
}

// Processes lists the processes the engine can open.
func (s *ScanSession) Processes(ctx context.Context) ([]m.ProcessView, error) {
	var out []m.ProcessView

	err := s.call(adapter.CmdGetProcesses, func() error {
		var err error
		out, err = s.engine.GetProcesses(ctx)

		return err
	})

	return out, err
}

// OpenedProcess asks the engine which process it currently holds.
func (s *ScanSession) OpenedProcess(ctx context.Context) (*m.ProcessView, error) {
	var out *m.ProcessView

	err := s.call(adapter.CmdGetOpenedProcess, func() error {
		var err error
		out, err = s.engine.GetOpenedProcess(ctx)

		return err
	})

	return out, err
}

// OpenProcess selects the target process and resets the session to
// BeforeInitialScan with no results, selection, operand or pagination.
func (s *ScanSession) OpenProcess(p m.ProcessView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proc := p
	s.process = &proc
	s.resetLocked()
	s.demoteScanTypeLocked()
	s.operand = emptyOperandFor(s.arityLocked())

	s.logger.Info("process selected", "pid", p.PID, "name", p.Name)
}

// SelectValueType changes the value type. It is only allowed before the
// first scan, since the engine keeps results per value type.
func (s *ScanSession) SelectValueType(vt m.ValueType) error {
	if _, err := s.values.Describe(vt); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != m.BeforeInitialScan {
		return fmt.Errorf("%w: value type is fixed once scanning started", ErrWrongState)
	}

	s.valueType = vt

	return nil
}

// SelectScanType changes the scan type. It must be available in the current
// state. When the operand arity changes the pending operand is cleared to the
// blank shape of the new arity.
func (s *ScanSession) SelectScanType(st m.ScanType) error {
	arity, err := s.scans.OperandArityOf(st)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scans.IsAvailable(st, s.state) {
		return fmt.Errorf("%w: %s in %s", ErrScanTypeUnavailable, st, s.state)
	}

	s.scanType = st
	if !operandMatchesArity(s.operand, arity) {
		s.operand = emptyOperandFor(arity)
	}

	return nil
}

// SetOperand sets the pending operand. Its shape must match the selected
// scan type: nil for no operands, ScalarOperand for one, RangeOperand for two.
// Literals are validated when a scan is issued, not here.
func (s *ScanSession) SetOperand(op m.Operand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	arity := s.arityLocked()
	if !operandMatchesArity(op, arity) {
		return &ValidationError{Reason: fmt.Sprintf("%s takes %d operand(s), got %s", s.scanType, arity, operandShape(op))}
	}

	s.operand = op

	return nil
}

// AvailableScanTypes lists the scan types selectable in the current state.
func (s *ScanSession) AvailableScanTypes() []ScanTypeDescriptor {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	return s.scans.AvailableFor(state)
}

// State returns the current lifecycle state.
func (s *ScanSession) State() m.LifecycleState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Results returns a copy of the current page of addresses.
func (s *ScanSession) Results() []m.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneAddresses(s.results)
}

// Snapshot copies the whole session state.
func (s *ScanSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var proc *m.ProcessView
	if s.process != nil {
		p := *s.process
		proc = &p
	}

	return Snapshot{
		ID:        s.id,
		Process:   proc,
		State:     s.state,
		ScanType:  s.scanType,
		ValueType: s.valueType,
		Operand:   s.operand,
		Results:   cloneAddresses(s.results),
		Selection: append([]int(nil), s.selection...),
		Cursor:    s.cursor,
		Gaps:      append([]DecodeGap(nil), s.gaps...),
	}
}

// FirstScan runs the initial scan over the opened process. On success the
// session moves to AfterInitialScan and page 1 is fetched. A scan type that
// is not available after the first scan is demoted to DefaultScanType.
// If the engine rejects the scan nothing changes. If only the page fetch
// fails, the scan stands and the returned error wraps the fetch failure.
func (s *ScanSession) FirstScan(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	if s.process == nil {
		s.mu.Unlock()
		return ErrNoProcess
	}

	if s.state != m.BeforeInitialScan {
		s.mu.Unlock()
		return fmt.Errorf("%w: first scan needs %s, session is %s", ErrWrongState, m.BeforeInitialScan, s.state)
	}

	info, err := s.prepareScanLocked()
	pid := s.process.PID
	vt := s.valueType
	s.mu.Unlock()

	if err != nil {
		return err
	}

	err = s.call(adapter.FirstScanCommand(vt), func() error {
		return s.engine.FirstScan(ctx, vt, pid, info)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.resetLocked()
	s.state = m.AfterInitialScan
	s.demoteScanTypeLocked()
	s.mu.Unlock()

	if err := s.FetchPage(ctx, 1); err != nil {
		return fmt.Errorf("first scan succeeded but fetching page 1 failed: %w", err)
	}

	return nil
}

// NextScan narrows the current results with the selected scan type, clears
// the selection and refetches the current page.
func (s *ScanSession) NextScan(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	if s.state != m.AfterInitialScan {
		s.mu.Unlock()
		return fmt.Errorf("%w: next scan needs %s", ErrWrongState, m.AfterInitialScan)
	}

	info, err := s.prepareScanLocked()
	vt := s.valueType
	s.mu.Unlock()

	if err != nil {
		return err
	}

	err = s.call(adapter.NextScanCommand(vt), func() error {
		return s.engine.NextScan(ctx, vt, info)
	})
	if err != nil {
		return err
	}

	return s.afterGeneration(ctx)
}

// UndoScan asks the engine to step back one generation and refetches the
// current page. There is no local rollback: the result is whatever the
// engine reports afterwards.
func (s *ScanSession) UndoScan(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	if s.state != m.AfterInitialScan {
		s.mu.Unlock()
		return fmt.Errorf("%w: undo needs %s", ErrWrongState, m.AfterInitialScan)
	}

	vt := s.valueType
	s.mu.Unlock()

	err := s.call(adapter.UndoScanCommand(vt), func() error {
		return s.engine.UndoScan(ctx, vt)
	})
	if err != nil {
		return err
	}

	return s.afterGeneration(ctx)
}

// NewScan clears the engine results and returns the session to
// BeforeInitialScan with empty results, selection, operand and pagination.
func (s *ScanSession) NewScan(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSessionBusy
	}
	defer s.busy.Store(false)

	err := s.call(adapter.CmdClearLastScan, func() error {
		return s.engine.ClearLastScan(ctx)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.demoteScanTypeLocked()
	s.operand = emptyOperandFor(s.arityLocked())

	return nil
}

// FetchPage loads page (1-based) and replaces the result set with it. A
// response that arrives after a newer fetch or a reset was issued is dropped
// and ErrStalePage is returned. Fetches are idempotent and safe to retry.
func (s *ScanSession) FetchPage(ctx context.Context, page int) error {
	s.mu.Lock()
	if s.state != m.AfterInitialScan {
		s.mu.Unlock()
		return fmt.Errorf("%w: no results before the first scan", ErrWrongState)
	}

	offset, err := s.cursor.OffsetOf(page)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.fetchSeq++
	seq := s.fetchSeq
	limit := s.cursor.PageSize
	vt := s.valueType
	s.mu.Unlock()

	var resp m.ScanPage

	err = s.call(adapter.GetLastScanCommand(vt), func() error {
		var err error
		resp, err = s.engine.GetLastScan(ctx, vt, limit, offset)

		return err
	})
	if err != nil {
		return err
	}

	addrs, gaps := s.decoder.DecodePage(resp.Regions)
	for _, gap := range gaps {
		s.logger.Warn("decode gap", "page", page, "region", gap.Index, "tag", gap.Tag, "reason", gap.Reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		s.logger.Debug("discarding stale page", "page", page, "seq", seq, "latest", s.fetchSeq)
		return ErrStalePage
	}

	s.results = addrs
	s.selection = nil
	s.gaps = gaps
	s.cursor.Page = page
	s.cursor.Total = resp.Total

	return nil
}

// NextPage fetches the page after the current one, if any.
func (s *ScanSession) NextPage(ctx context.Context) error {
	s.mu.Lock()
	next := s.cursor.NextPage()
	s.mu.Unlock()

	return s.FetchPage(ctx, next)
}

// PrevPage fetches the page before the current one, if any.
func (s *ScanSession) PrevPage(ctx context.Context) error {
	s.mu.Lock()
	prev := s.cursor.PrevPage()
	s.mu.Unlock()

	return s.FetchPage(ctx, prev)
}

// Select replaces the selection with the given row indices of the current page.
func (s *ScanSession) Select(indices ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]struct{}, len(indices))
	selection := make([]int, 0, len(indices))

	for _, i := range indices {
		if i < 0 || i >= len(s.results) {
			return fmt.Errorf("%w: %d of %d", ErrInvalidSelection, i, len(s.results))
		}

		if _, dup := seen[i]; dup {
			continue
		}

		seen[i] = struct{}{}
		selection = append(selection, i)
	}

	sort.Ints(selection)
	s.selection = selection

	return nil
}

// ClearSelection empties the selection.
func (s *ScanSession) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = nil
}

// Selected returns the selected addresses in row order.
func (s *ScanSession) Selected() []m.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]m.Address, 0, len(s.selection))
	for _, i := range s.selection {
		out = append(out, s.results[i])
	}

	return out
}

// WriteSelected writes literal to every selected address.
func (s *ScanSession) WriteSelected(ctx context.Context, literal string) (m.WriteBatchResult, error) {
	return s.WriteValue(ctx, s.Selected(), literal)
}

// WriteValue validates literal once against the selected value type and
// then issues one independent write per address. Writes run concurrently
// and report their own outcome; a failed write never blocks or rolls back
// the others. Successful writes update the matching rows of the current
// page. The error return is only used for validation and precondition failures.
func (s *ScanSession) WriteValue(ctx context.Context, addresses []m.Address, literal string) (m.WriteBatchResult, error) {
	s.mu.Lock()
	vt := s.valueType
	hasProcess := s.process != nil
	s.mu.Unlock()

	if !hasProcess {
		return m.WriteBatchResult{}, ErrNoProcess
	}

	value, err := s.values.Normalize(vt, literal)
	if err != nil {
		return m.WriteBatchResult{}, err
	}

	outcomes := make([]m.WriteOutcome, len(addresses))
	command := adapter.WriteMemoryCommand(vt)

	var g errgroup.Group
	g.SetLimit(s.parallel)

	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			outcomes[i] = s.writeOne(ctx, command, vt, addr, value)
			return nil
		})
	}

	_ = g.Wait()

	s.mu.Lock()
	for i := range outcomes {
		if outcomes[i].Status != m.WriteOK {
			continue
		}

		outcomes[i].Address.Value = value
		s.applyWriteLocked(outcomes[i].Address.Pointer, value)
	}
	s.mu.Unlock()

	result := m.WriteBatchResult{Outcomes: outcomes}
	s.logger.Info("write batch finished", "requested", len(addresses), "succeeded", result.Succeeded())

	return result, nil
}

func (s *ScanSession) writeOne(ctx context.Context, command string, vt m.ValueType, addr m.Address, value m.Value) m.WriteOutcome {
	outcome := m.WriteOutcome{Address: addr}

	var written *int

	err := s.call(command, func() error {
		var err error
		written, err = s.engine.WriteMemory(ctx, vt, addr.Pointer, value)

		return err
	})

	switch {
	case err != nil:
		outcome.Status = m.WriteError
		outcome.Err = err
	case written == nil:
		outcome.Status = m.WriteFailed
		outcome.Err = fmt.Errorf("engine wrote nothing at %#x", addr.Pointer)
		s.logger.Warn("write failed", "address", fmt.Sprintf("%#x", addr.Pointer))
	default:
		outcome.Status = m.WriteOK
		outcome.BytesWritten = *written
	}

	return outcome
}

func (s *ScanSession) applyWriteLocked(pointer uint64, value m.Value) {
	for i := range s.results {
		if s.results[i].Pointer == pointer {
			s.results[i].Value = value
		}
	}
}

// afterGeneration clears the selection and refetches the current page once
// the engine has produced a new scan generation.
func (s *ScanSession) afterGeneration(ctx context.Context) error {
	s.mu.Lock()
	s.selection = nil
	page := s.cursor.Page
	s.mu.Unlock()

	if err := s.FetchPage(ctx, page); err != nil {
		return fmt.Errorf("refetching page %d: %w", page, err)
	}

	return nil
}

// prepareScanLocked checks the scan type and operand and returns the
// sanitized scanInfo with every literal in canonical form.
func (s *ScanSession) prepareScanLocked() (m.ScanInfo, error) {
	if !s.scans.IsAvailable(s.scanType, s.state) {
		return m.ScanInfo{}, fmt.Errorf("%w: %s in %s", ErrScanTypeUnavailable, s.scanType, s.state)
	}

	operand, err := s.normalizeOperandLocked()
	if err != nil {
		return m.ScanInfo{}, err
	}

	return s.sanitizer.Reduce(s.scanType, operand)
}

// normalizeOperandLocked validates the pending operand against the scan type
// arity and the value type, returning it with canonical literals.
func (s *ScanSession) normalizeOperandLocked() (m.Operand, error) {
	arity := s.arityLocked()
	if !operandMatchesArity(s.operand, arity) {
		return nil, &ValidationError{Reason: fmt.Sprintf("%s takes %d operand(s), got %s", s.scanType, arity, operandShape(s.operand))}
	}

	switch op := s.operand.(type) {
	case m.ScalarOperand:
		text, err := s.values.Normalize(s.valueType, op.Text)
		if err != nil {
			return nil, err
		}

		return m.ScalarOperand{Text: string(text)}, nil
	case m.RangeOperand:
		start, err := s.values.Normalize(s.valueType, op.Start)
		if err != nil {
			return nil, err
		}

		end, err := s.values.Normalize(s.valueType, op.End)
		if err != nil {
			return nil, err
		}

		return m.RangeOperand{Start: string(start), End: string(end)}, nil
	}

	return s.operand, nil
}

func (s *ScanSession) demoteScanTypeLocked() {
	if s.scans.IsAvailable(s.scanType, s.state) {
		return
	}

	s.logger.Debug("scan type unavailable, using default", "from", s.scanType, "to", DefaultScanType)
	s.scanType = DefaultScanType
	s.operand = emptyOperandFor(s.arityLocked())
}

// resetLocked returns to BeforeInitialScan and drops everything derived from
// engine results. Bumping fetchSeq invalidates fetches still in flight.
func (s *ScanSession) resetLocked() {
	s.state = m.BeforeInitialScan
	s.results = nil
	s.selection = nil
	s.gaps = nil
	s.cursor.Reset()
	s.fetchSeq++
}

func (s *ScanSession) arityLocked() int {
	arity, err := s.scans.OperandArityOf(s.scanType)
	if err != nil {
		return 0
	}

	return arity
}

// call runs one engine command, logs it and wraps failures in *EngineCallError.
func (s *ScanSession) call(command string, fn func() error) error {
	start := time.Now()
	err := fn()
	dur := time.Since(start)

	if err != nil {
		s.logger.Error("engine command failed", "command", command, "duration", dur, "error", err)

		var existing *EngineCallError
		if errors.As(err, &existing) {
			return err
		}

		return &EngineCallError{Command: command, Err: err}
	}

	s.logger.Debug("engine command completed", "command", command, "duration", dur)

	return nil
}

func operandShape(op m.Operand) string {
	switch op.(type) {
	case nil:
		return "none"
	case m.ScalarOperand:
		return "a scalar"
	case m.RangeOperand:
		return "a range"
	default:
		return fmt.Sprintf("%T", op)
	}
}

func cloneAddresses(in []m.Address) []m.Address {
	if in == nil {
		return nil
	}

	out := make([]m.Address, len(in))
	copy(out, in)

	return out
}
