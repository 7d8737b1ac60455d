package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelfind/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] [title...]",
	Short: "Interactive search screen",
	Long: `Open the interactive search screen.

Without a title the last search is restored from history.

Keys:
  enter        search
  ctrl+n       load more results
  alt+←/alt+→  back / forward through earlier searches
  tab          switch between title and year
  esc          quit`,
	RunE: runBrowseCmd,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringP("year", "y", "", "Release year")
	browseCmd.Flags().String("log-file", "", "Write logs to this file (the terminal belongs to the UI)")
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetString("year")
	logFile, _ := cmd.Flags().GetString("log-file")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	a := newApp(cfg, newLogger(logOut, cfg.Log.Level))

	ctx, stop := signal.NotifyContext(withBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hist, err := a.openHistory(ctx)
	if err != nil {
		return err
	}
	defer hist.Close()

	return tui.Run(ctx, tui.Options{
		Coordinator: a.coord,
		Navigator:   hist,
		Logger:      a.log,
		Term:        strings.Join(args, " "),
		Year:        year,
		Placeholder: cfg.Search.PlaceholderPoster,
	})
}
