// Package main provides the command-line interface of the plugin builder.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/plugin-builder/pkg/logger"
	"github.com/spf13/cobra"
)

// modeEnv is read when no mode argument is given.
const modeEnv = "PBUILD_MODE"

var (
	quiet      bool
	verbose    bool
	projectDir string
	configPath string
	hooksPath  string
	noHookLogs bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pbuild [production|development]",
		Short: "Plugin builder - bundles an editor plugin with esbuild",
		Long: `Bundle the plugin in production (one-shot, minified) or development (watch) mode.

An optional .devhooks.go file in the project can override the configuration,
pre-build, build and post-build stages.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", ".", "Project directory")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Project settings file (default <dir>/pbuild.yaml)")
	rootCmd.PersistentFlags().StringVar(&hooksPath, "hooks", "", "Hooks module path (overrides hooks.path)")
	rootCmd.Flags().BoolVar(&noHookLogs, "no-hook-logs", false, "Do not log which hooks are used or skipped")

	rootCmd.AddCommand(createBannerCmd(), createHooksCmd(), createInitHooksCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.NewDefaultLogger().Errorf("%v", err)
		os.Exit(1)
	}
}
