package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scanctl/internal/domain"
	"github.com/mouse-blink/scanctl/internal/logging"
	m "github.com/mouse-blink/scanctl/internal/model"
)

var processesOpenedFlag bool

// processesCmd represents the processes command.
var processesCmd = newProcessesCmd()

func newProcessesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "processes",
		Short: "List the processes the engine can open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui, err := newUI(cmd, current.cfg, false)
			if err != nil {
				return err
			}

			sess, err := domain.NewScanSession(current.engine, domain.WithLogger(current.logger))
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			if processesOpenedFlag {
				opened, err := sess.OpenedProcess(ctx)
				if err != nil {
					return err
				}

				if opened == nil {
					return ui.DisplayProcesses(nil)
				}

				return ui.DisplayProcesses([]m.ProcessView{*opened})
			}

			procs, err := sess.Processes(ctx)
			if err != nil {
				return err
			}

			logging.With(current.logger, "count", len(procs)).Debug("listed processes")

			return ui.DisplayProcesses(procs)
		},
	}
	cmd.Flags().BoolVar(&processesOpenedFlag, "opened", false, "show only the process the engine currently holds")

	return cmd
}

func init() {
	rootCmd.AddCommand(processesCmd)
}
