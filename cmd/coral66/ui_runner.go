package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"coral66/internal/driver"
	"coral66/internal/ui"
)

type analyzeOutcome struct {
	results []driver.FileResult
	err     error
}

// runAnalyzeWithUI runs the batch in a goroutine and renders its progress
// events until the channel closes.
func runAnalyzeWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan analyzeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.AnalyzeAll(ctx, files, optsCopy)
		outcomeCh <- analyzeOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
