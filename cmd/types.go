package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scanctl/internal/domain"
	m "github.com/mouse-blink/scanctl/internal/model"
)

var typesStateFlag string

// typesCmd represents the types command.
var typesCmd = newTypesCmd()

func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List value types with their bounds and scan types with their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui, err := newUI(cmd, current.cfg, false)
			if err != nil {
				return err
			}

			values := domain.NewValueTypeRegistry()
			scans := domain.NewScanTypeRegistry()

			var scanTypes []domain.ScanTypeDescriptor

			switch typesStateFlag {
			case "":
				scanTypes = scans.All()
			case "first":
				scanTypes = scans.AvailableFor(m.BeforeInitialScan)
			case "next":
				scanTypes = scans.AvailableFor(m.AfterInitialScan)
			default:
				return fmt.Errorf("--state must be first or next, got %q", typesStateFlag)
			}

			return ui.DisplayTypes(values.All(), scanTypes)
		},
	}
	cmd.Flags().StringVar(&typesStateFlag, "state", "", "only scan types usable for the first or next scan (first|next)")

	return cmd
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
