package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Simulation task attempts and unlock status",
}

var taskUnlocksCmd = &cobra.Command{
	Use:   "unlocks",
	Short: "Show which simulation-task types are unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		ctx := cmd.Context()
		section := services.Config.Section

		progress, err := services.Repo.LessonProgress(ctx, services.Config.User, section)
		if err != nil {
			progress = map[string]float64{}
		}

		fmt.Printf("%-20s  %-8s  %s\n", "TASK TYPE", "STATUS", "COVERAGE")
		fmt.Println(strings.Repeat("─", 44))
		for _, s := range services.Evaluator.UnlockedTaskTypes(ctx, section, progress) {
			status := "locked"
			if s.Unlocked {
				status = "open"
			}
			fmt.Printf("%-20s  %-8s  %.0f%%\n", s.TaskType, status, s.Progress)
		}
		return nil
	},
}

var taskAttemptCmd = &cobra.Command{
	Use:   "attempt <task-id>",
	Short: "Record a scored simulation attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		score, _ := cmd.Flags().GetFloat64("score")
		topic, _ := cmd.Flags().GetString("topic")
		minutes, _ := cmd.Flags().GetInt("minutes")

		rec := services.Recorder.RecordAttempt(cmd.Context(),
			args[0], services.Config.Section, topic, score, minutes*60, time.Now())

		fmt.Printf("%s: attempt %d, score %.0f (best %.0f, avg %.1f)",
			rec.TaskID, rec.Attempts, rec.LastScore, rec.BestScore, rec.AvgScore)
		if rec.Mastered {
			fmt.Print("  ✓ mastered")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	taskAttemptCmd.Flags().Float64("score", 0, "Attempt score, 0-100")
	taskAttemptCmd.Flags().String("topic", "", "Topic the task covers")
	taskAttemptCmd.Flags().Int("minutes", 0, "Minutes spent on the attempt")

	taskCmd.AddCommand(taskUnlocksCmd)
	taskCmd.AddCommand(taskAttemptCmd)
}
