package main

import (
	"fmt"

	"github.com/lerenn/plugin-builder/pkg/banner"
	"github.com/spf13/cobra"
)

func createBannerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banner",
		Short: "Print the header prepended to the bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject()
			if err != nil {
				return err
			}
			m, err := p.deps.Config.LoadManifest(p.path(p.cfg.Manifest))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), banner.Generate(banner.Metadata{
				Name:    m.Name,
				Version: m.Version,
				HelpURL: m.HelpURL,
				Author:  m.Author,
			}))
			return err
		},
	}
}
