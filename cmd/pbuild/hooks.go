package main

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/plugin-builder/configs"
	"github.com/lerenn/plugin-builder/pkg/devhooks"
	"github.com/lerenn/plugin-builder/pkg/hooks"
	"github.com/spf13/cobra"
)

func createHooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "List the hooks the hooks module implements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject()
			if err != nil {
				return err
			}
			path := p.hooksModule()
			proxy, err := p.deps.Loader.Open(path, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !proxy.Loaded() {
				_, err = fmt.Fprintf(out, "no hooks module at %s\n", path)
				return err
			}
			fmt.Fprintf(out, "%s\n", path)
			for _, name := range hooks.Names() {
				state := "default"
				if proxy.Has(name) {
					state = "override"
				}
				fmt.Fprintf(out, "  %-12s %-12s %s\n", name, devhooks.Symbol(name), state)
			}
			return nil
		},
	}
}

func createInitHooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-hooks",
		Short: "Write a commented hooks module template",
		Long: `Write a hooks module template to the configured hooks path.
An existing module is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject()
			if err != nil {
				return err
			}
			path := p.hooksModule()

			exists, err := p.deps.FS.Exists(path)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: %s", ErrHooksModuleExists, path)
			}
			if err := p.deps.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
			}
			if err := p.deps.FS.WriteFileAtomic(path, configs.DevHooksTemplate, 0o644); err != nil {
				return fmt.Errorf("failed to write hooks module: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
}
