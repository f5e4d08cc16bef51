package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/olusolaa/lumalog/internal/core/ports"
	"github.com/olusolaa/lumalog/internal/reporting/json"
	"github.com/olusolaa/lumalog/internal/reporting/text"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
)

func newCheckCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and show what each level resolves to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			var reporter ports.ConfigReporter
			switch output {
			case text.ReporterTypeText:
				reporter = text.NewReporter(text.Config{NoColor: application.Config.Logging.NoColor}, cmd.OutOrStdout())
			case json.ReporterTypeJSON:
				reporter = json.NewReporter(cmd.OutOrStdout())
			default:
				return apperrors.NewUserFacing(apperrors.CodeConfigValidation,
					fmt.Sprintf("unsupported output %q", output), "Supported: text, json")
			}
			if err := application.Check(cmd.Context(), reporter); err != nil {
				return err
			}
			slog.DebugContext(cmd.Context(), "Configuration report written", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", text.ReporterTypeText, "Report format (text, json)")
	return cmd
}
