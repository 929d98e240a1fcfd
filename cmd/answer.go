package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studymesh/cpaprep/internal/bank"
)

var answerCmd = &cobra.Command{
	Use:   "answer <item-id>",
	Short: "Record an answer outcome for a practice item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		itemID := args[0]
		correct, _ := cmd.Flags().GetBool("correct")
		section := services.Config.Section

		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = bank.Topic(section, itemID)
		}

		rec := services.Tracker.RecordAnswer(cmd.Context(), itemID, correct, topic, section, time.Now())

		fmt.Printf("%s: %d/%d correct, level %s, next review %s\n",
			rec.ItemID, rec.TimesCorrect, rec.TimesAnswered, rec.MasteryLevel,
			rec.NextReviewAt.Format("2006-01-02"))
		return nil
	},
}

func init() {
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().String("topic", "", "Topic tag (defaults to the bank's tag for the item)")
}
