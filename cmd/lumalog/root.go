package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/lumalog/internal/app"
	"github.com/olusolaa/lumalog/internal/config"
	"github.com/olusolaa/lumalog/internal/log"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "lumalog",
	Short: "Emits leveled log messages to the console and a log file.",
	Long: `lumalog filters messages by level and build mode and renders them as
styled console lines and, optionally, TEXT or JSON lines appended to a file.
Configuration comes from a YAML file, LUMALOG_* environment variables and flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .lumalog.yaml in . or $HOME)")
	flags.String("log-level", "", "Override threshold level (error, warn, info, debug, trace)")
	flags.String("log-file", "", "Append log lines to this file (enables the file sink)")
	flags.String("log-format", "", "Override file format (text, json)")
	flags.Bool("no-color", false, "Disable console colors")
	flags.Bool("log-in-release", false, "Keep DEBUG and TRACE in release builds")

	viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	viper.BindPFlag("logging.file.path", flags.Lookup("log-file"))
	viper.BindPFlag("logging.file.format", flags.Lookup("log-format"))
	viper.BindPFlag("logging.no_color", flags.Lookup("no-color"))
	viper.BindPFlag("logging.log_in_release", flags.Lookup("log-in-release"))

	config.SetDefaults(viper.GetViper())
	config.ConfigureEnv(viper.GetViper())

	rootCmd.AddCommand(newEmitCmd(), newCheckCmd())
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".lumalog")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError,
				"failed to read config file", "Check that the file exists and is valid YAML.")
		}
	}

	// An explicit --log-file turns the file sink on.
	if cmd.Flags().Changed("log-file") {
		viper.Set("logging.file.enabled", true)
	}
	return nil
}

// bootstrap builds the application with console output bound to the command's
// writers. Diagnostics go to the command's stderr, and the default slog logger
// is routed there too.
func bootstrap(cmd *cobra.Command) (*app.Application, error) {
	application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper(), cmd.ErrOrStderr(),
		lumalog.WithConsoleWriters(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(log.NewSlogHandler(application.Diagnostics)))
	return application, nil
}

func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	if !ok {
		userMsg = err.Error()
	}
	fmt.Fprintf(w, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
}
