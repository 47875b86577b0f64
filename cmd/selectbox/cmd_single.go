package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/selectbox/cmd/selectbox/tui"
	"github.com/ruminaider/selectbox/internal/config"
	"github.com/ruminaider/selectbox/internal/dataset"
	"github.com/ruminaider/selectbox/internal/menu"
	"github.com/ruminaider/selectbox/internal/paths"
	"github.com/spf13/cobra"
)

var singleDataset string

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Run the single-select demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return errors.New("selectbox needs an interactive terminal")
		}

		cfg, entries, err := loadSetup(singleDataset)
		if err != nil {
			return err
		}

		model := tui.NewSingleModel(cfg, entries)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		final := finalModel.(tui.SingleModel)
		if final.Selected != nil {
			fmt.Println(final.Selected.Name)
		}
		return nil
	},
}

// loadSetup resolves the demo config and the entry list it points at.
func loadSetup(override string) (config.Config, []menu.Entry[dataset.Option], error) {
	cfg, err := config.Load(paths.ConfigFile())
	if err != nil {
		return config.Config{}, nil, err
	}

	path := cfg.Dataset
	if override != "" {
		path = override
	}

	d := dataset.Sample()
	if path != "" {
		d, err = dataset.Load(path)
		if err != nil {
			return config.Config{}, nil, err
		}
	}
	return cfg, d.Entries(), nil
}

func init() {
	singleCmd.Flags().StringVar(&singleDataset, "data", "", "Dataset file to select from (overrides the configured one)")
}
