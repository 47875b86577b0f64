package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/selectbox/cmd/selectbox/tui"
	"github.com/spf13/cobra"
)

var multiDataset string

var multiCmd = &cobra.Command{
	Use:   "multi",
	Short: "Run the multi-select demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return errors.New("selectbox needs an interactive terminal")
		}

		cfg, entries, err := loadSetup(multiDataset)
		if err != nil {
			return err
		}

		model := tui.NewMultiModel(cfg, entries)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		final := finalModel.(tui.MultiModel)
		for _, sel := range final.Selections {
			fmt.Println(sel.Name)
		}
		return nil
	},
}

func init() {
	multiCmd.Flags().StringVar(&multiDataset, "data", "", "Dataset file to select from (overrides the configured one)")
}
