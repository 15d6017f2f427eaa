package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyowl/studyowl/internal/app"
	"github.com/studyowl/studyowl/internal/llm"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/store"
	"github.com/studyowl/studyowl/internal/studygen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		State:    session.New(),
		Attempts: st.AttemptRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Service = studygen.NewService(provider)
		opts.ModelID = provider.ModelID()
	}

	return app.Run(opts)
}
