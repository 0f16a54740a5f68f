// Package cmd wires the demo application's command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/scrollkit/scrollkit/internal/demo"
)

var rootCmd = &cobra.Command{
	Use:   "scrollkit",
	Short: "Browse a huge generated list with virtual scrolling",
	Long: `Scrollkit renders only the visible slice of a very large list.

Scroll with the mouse wheel or j/k, jump with g/G, and press / to
fuzzy-search and jump to a match. The footer shows live scroll motion
state straight from the engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}

		items, _ := cmd.Flags().GetInt("items")
		overscan, _ := cmd.Flags().GetInt("overscan")
		debounce, _ := cmd.Flags().GetDuration("debounce")
		horizontal, _ := cmd.Flags().GetBool("horizontal")

		m := demo.New(demo.Config{
			Items:      items,
			Overscan:   overscan,
			Debounce:   debounce,
			Horizontal: horizontal,
		})
		defer m.Close()

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().Int("items", 100_000, "number of generated items")
	rootCmd.Flags().Int("overscan", 5, "items rendered beyond the viewport on each side")
	rootCmd.Flags().Duration("debounce", 100*time.Millisecond, "idle debounce for the scroll motion state")
	rootCmd.Flags().Bool("horizontal", false, "enable horizontal scrolling")
	rootCmd.Flags().String("log-file", "", "write debug logs to this file")
}

// setupLogging sends logs to the requested file; the terminal belongs to the
// TUI, so without a file logs are discarded.
func setupLogging(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
