package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic accuracy for the section",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		section := services.Config.Section
		stats, err := services.Repo.TopicStats(cmd.Context(), services.Config.User, section)
		if err != nil {
			return fmt.Errorf("load topic stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Printf("No answer history for section %s yet.\n", strings.ToUpper(section))
			return nil
		}

		fmt.Printf("%-34s  %9s  %9s  %s\n", "TOPIC", "ACCURACY", "ANSWERED", "LAST PRACTICED")
		fmt.Println(strings.Repeat("─", 76))
		for _, t := range stats {
			last := "never"
			if t.LastPracticedAt != nil {
				last = t.LastPracticedAt.Format("2006-01-02")
			}
			fmt.Printf("%-34s  %8.1f%%  %9d  %s\n", t.Topic, t.Accuracy, t.TotalQuestions, last)
		}
		return nil
	},
}
