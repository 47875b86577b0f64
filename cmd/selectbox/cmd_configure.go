package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/selectbox/internal/config"
	"github.com/ruminaider/selectbox/internal/paths"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the widget configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}

		menuHeight := strconv.Itoa(cfg.MenuHeight)
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Placeholder").
					Description("Shown in the empty query textfield").
					Value(&cfg.Placeholder),
				huh.NewInput().
					Title("Menu height").
					Description("Visible rows in the open menu").
					Value(&menuHeight).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 1 {
							return fmt.Errorf("must be a positive number")
						}
						return nil
					}),
				huh.NewInput().
					Title("Dataset file").
					Description("YAML option list; empty uses the built-in sample").
					Value(&cfg.Dataset),
				huh.NewConfirm().
					Title("Keep query across selections?").
					Description("Multi-select: preserve the search text after a commit").
					Value(&cfg.KeepQuery),
				huh.NewConfirm().
					Title("Movable textfield?").
					Description("Multi-select: allow arrowing the insertion cursor between chips").
					Value(&cfg.TextfieldMovable),
			),
		).Run()
		if err != nil {
			return err
		}
		cfg.MenuHeight, _ = strconv.Atoi(menuHeight)

		if err := config.Save(cfg, paths.ConfigFile()); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", paths.ConfigFile())
		return nil
	},
}
