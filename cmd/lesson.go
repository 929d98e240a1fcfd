package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studymesh/cpaprep/internal/lessons"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Browse the lesson catalog and record progress",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the section's lessons with completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		section := services.Config.Section
		progress, err := services.Repo.LessonProgress(cmd.Context(), services.Config.User, section)
		if err != nil {
			progress = map[string]float64{}
		}

		fmt.Printf("%-26s  %-44s  %5s  %8s\n", "ID", "TITLE", "MIN", "PROGRESS")
		fmt.Println(strings.Repeat("─", 90))
		for _, l := range lessons.BySection(section) {
			fmt.Printf("%-26s  %-44s  %5d  %7.0f%%\n",
				l.ID, l.Title, l.DurationMinutes, progress[l.ID])
		}
		return nil
	},
}

var lessonProgressCmd = &cobra.Command{
	Use:   "progress <lesson-id> <percent>",
	Short: "Set a lesson's completion percent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		l, err := lessons.GetLesson(args[0])
		if err != nil {
			return err
		}
		percent, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse percent: %w", err)
		}

		if err := services.Repo.SetLessonProgress(cmd.Context(),
			services.Config.User, l.ID, l.Section, percent); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		fmt.Printf("%s: %.0f%%\n", l.ID, percent)
		return nil
	},
}

func init() {
	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonProgressCmd)
}
