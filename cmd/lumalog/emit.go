package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/lumalog/internal/app"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

func newEmitCmd() *cobra.Command {
	var (
		level string
		from  []string
	)

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Emit one message, or every line read from files or stdin.",
		Example: `  lumalog emit --level warn "disk almost full"
  tail -f app.out | lumalog emit --level info --log-file app.log
  lumalog emit --from a.txt --from b.txt --fields service=api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			lvl := application.Config.Emit.Level
			if cmd.Flags().Changed("level") {
				if lvl, err = lumalog.ParseLevel(level); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			if len(args) > 0 {
				application.Emit(ctx, lvl, strings.Join(args, " "))
				return nil
			}

			if len(from) == 0 {
				return application.EmitLines(ctx, lvl, app.Source{Name: "stdin", Reader: cmd.InOrStdin()})
			}

			sources := make([]app.Source, 0, len(from))
			for _, path := range from {
				f, err := os.Open(path)
				if err != nil {
					return apperrors.WrapUserFacing(err, apperrors.CodeInputReadError,
						"cannot open input "+path, "Check the --from paths.")
				}
				defer f.Close()
				slog.DebugContext(ctx, "Opened input", "path", path)
				sources = append(sources, app.Source{Name: path, Reader: f})
			}
			return application.EmitLines(ctx, lvl, sources...)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "Level of the emitted messages")
	cmd.Flags().StringArrayVar(&from, "from", nil, "Read messages line by line from this file (repeatable)")
	cmd.Flags().String("fields", "", "Extra key=value pairs appended to every message (comma separated)")
	viper.BindPFlag(app.FieldsKey, cmd.Flags().Lookup("fields"))
	return cmd
}
