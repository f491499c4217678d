package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scanctl/internal/controller"
	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

var (
	scanPIDFlag    uint32
	scanTypeFlag   string
	scanNextFlags  []string
	scanUndoFlag   bool
	scanPageFlag   int
	scanTUIFlag    bool
	scanWriteFlag  string
	scanSelectFlag []int
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan EXPR",
		Short: "Scan a process, narrow the results and optionally write to them",
		Long: `Run a first scan over --pid with EXPR, then one next scan per --next, in
order. --undo steps back one scan afterwards. The requested page of results
is printed, or browsed interactively with --tui. With --write the value is
written to the rows given by --select (all rows of the page when absent, or
the rows marked in the pager).`,
		Example: `  scanctl scan --pid 4242 --type i32 100 --next 95
  scanctl scan --pid 4242 --type f32 u --next d --next '0..=100' --tui
  scanctl scan --pid 4242 100 --write 999 --select 0,2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.Uint32Var(&scanPIDFlag, "pid", 0, "process id to scan")
	flags.StringVarP(&scanTypeFlag, "type", "t", "", "value type (default session.value_type)")
	flags.StringArrayVarP(&scanNextFlags, "next", "n", nil, "next scan expression (repeatable, applied in order)")
	flags.BoolVar(&scanUndoFlag, "undo", false, "undo the last scan before showing results")
	flags.IntVarP(&scanPageFlag, "page", "p", 1, "result page to show")
	flags.BoolVar(&scanTUIFlag, "tui", false, "browse results interactively")
	flags.StringVarP(&scanWriteFlag, "write", "w", "", "value to write to the selected rows")
	flags.IntSliceVar(&scanSelectFlag, "select", nil, "page rows to write, e.g. 0,2,5")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}

func runScan(cmd *cobra.Command, expr string) error {
	ctx := commandContext(cmd)
	cfg := current.cfg

	typeName := scanTypeFlag
	if typeName == "" {
		typeName = cfg.Session.ValueType
	}

	vt, err := m.ParseValueType(typeName)
	if err != nil {
		return err
	}

	ui, err := newUI(cmd, cfg, scanTUIFlag)
	if err != nil {
		return err
	}

	sess, err := domain.NewScanSession(current.engine,
		domain.WithLogger(current.logger),
		domain.WithPageSize(cfg.Session.PageSize),
		domain.WithWriteParallelism(cfg.Session.WriteParallelism),
		domain.WithValueType(vt),
	)
	if err != nil {
		return err
	}

	sess.OpenProcess(resolveProcess(ctx, sess, scanPIDFlag))

	if err := applyExpr(sess, expr); err != nil {
		return err
	}

	if err := sess.FirstScan(ctx); err != nil {
		return fmt.Errorf("first scan %q: %w", expr, err)
	}

	for _, next := range scanNextFlags {
		if err := applyExpr(sess, next); err != nil {
			return err
		}

		if err := sess.NextScan(ctx); err != nil {
			return fmt.Errorf("next scan %q: %w", next, err)
		}
	}

	if scanUndoFlag {
		if err := sess.UndoScan(ctx); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
	}

	if scanPageFlag != 1 {
		if err := sess.FetchPage(ctx, scanPageFlag); err != nil {
			return fmt.Errorf("page %d: %w", scanPageFlag, err)
		}
	}

	if scanTUIFlag {
		err = ui.Browse(ctx, sess)
	} else {
		err = ui.DisplayPage(sess.Snapshot())
	}

	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("write") {
		return nil
	}

	return writeRows(ctx, ui, sess)
}

// resolveProcess looks up the name of pid; an unknown pid is still scanned.
func resolveProcess(ctx context.Context, sess *domain.ScanSession, pid uint32) m.ProcessView {
	procs, err := sess.Processes(ctx)
	if err != nil {
		current.logger.Debug("process lookup failed", "pid", pid, "error", err)
		return m.ProcessView{PID: pid}
	}

	for _, p := range procs {
		if p.PID == pid {
			return p
		}
	}

	return m.ProcessView{PID: pid}
}

func applyExpr(sess *domain.ScanSession, expr string) error {
	st, op, err := domain.ParseScanExpr(expr)
	if err != nil {
		return err
	}

	if err := sess.SelectScanType(st); err != nil {
		return fmt.Errorf("%q: %w", expr, err)
	}

	return sess.SetOperand(op)
}

func writeRows(ctx context.Context, ui controller.UI, sess *domain.ScanSession) error {
	switch {
	case len(scanSelectFlag) > 0:
		if err := sess.Select(scanSelectFlag...); err != nil {
			return err
		}
	case len(sess.Selected()) == 0:
		all := make([]int, len(sess.Results()))
		for i := range all {
			all[i] = i
		}

		if err := sess.Select(all...); err != nil {
			return err
		}
	}

	result, err := sess.WriteSelected(ctx, scanWriteFlag)
	if err != nil {
		return err
	}

	if err := ui.DisplayWriteResult(result); err != nil {
		return err
	}

	if failed := len(result.Failed()); failed > 0 {
		return fmt.Errorf("%d of %d writes failed", failed, len(result.Outcomes))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
