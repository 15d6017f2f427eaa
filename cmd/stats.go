package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quiz and practice-test scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().RecentAttempts(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No graded attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-7s  %s\n", "When", "Kind", "Score", "Session")
		fmt.Println(strings.Repeat("─", 80))
		for _, a := range attempts {
			fmt.Printf("%-19s  %-14s  %3d/%-3d  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.Kind, a.Correct, a.Total, a.SessionID)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
