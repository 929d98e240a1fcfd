package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose today's study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		ctx := cmd.Context()
		now := time.Now()

		snap := services.Snapshot(ctx, services.Config.Section, now)
		if n, _ := cmd.Flags().GetInt("flashcards-due"); n > 0 {
			snap.FlashcardsDue = n
		}
		if d, _ := cmd.Flags().GetString("exam-date"); d != "" {
			snap.ExamDate = d
		}

		plan := services.Composer.BuildPlan(ctx, snap, now)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Study plan for %s — section %s (%d min, %d activities)\n\n",
			plan.Date, strings.ToUpper(plan.Section), plan.EstimatedMinutes, len(plan.Activities))

		fmt.Printf("%-10s  %-12s  %-36s  %5s  %s\n", "PRIORITY", "TYPE", "TITLE", "MIN", "REASON")
		fmt.Println(strings.Repeat("─", 110))
		for _, a := range plan.Activities {
			title := a.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			fmt.Printf("%-10s  %-12s  %-36s  %5d  %s\n",
				a.Priority, a.Type, title, a.EstimatedMinutes, a.Reason)
		}

		if len(plan.Summary.WeakAreaFocus) > 0 {
			fmt.Printf("\nWeak areas in focus: %s\n", strings.Join(plan.Summary.WeakAreaFocus, ", "))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().Int("flashcards-due", 0, "Number of flashcards due (from the flashcard app)")
	planCmd.Flags().String("exam-date", "", "Exam date override (YYYY-MM-DD)")
}
