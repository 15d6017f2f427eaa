package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyowl/studyowl/internal/notes"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract plain text from a notes file (PDF, PPTX or text)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := notes.ExtractFile(args[0])
		if err != nil {
			return err
		}
		if text == "" {
			return fmt.Errorf("no readable text in %s", args[0])
		}
		fmt.Println(text)
		return nil
	},
}
