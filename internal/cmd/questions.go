package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// NewQuestionsCommand lists the question bank
func NewQuestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire statements and their axis weights",
		Example: `  civicmap questions
  civicmap questions --axis authority_governance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axisFlag, _ := cmd.Flags().GetString("axis")
			var filter *models.Axis
			if axisFlag != "" {
				axis, err := models.ParseAxis(axisFlag)
				if err != nil {
					return err
				}
				filter = &axis
			}
			return listQuestions(bank.Default().Questions(), filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("axis", "", "Only list questions weighting this axis")

	return cmd
}

func listQuestions(questions []models.Question, filter *models.Axis, w io.Writer) error {
	listed := 0
	for _, q := range questions {
		if filter != nil {
			if _, ok := q.Weights[*filter]; !ok {
				continue
			}
		}

		weights := make([]string, 0, len(q.Weights))
		for _, axis := range q.Axes() {
			weights = append(weights, fmt.Sprintf("%s %+g", axis.Label(), q.Weights[axis]))
		}
		fmt.Fprintf(w, "%2d. %s\n    [%s]\n", q.ID, q.Text, strings.Join(weights, ", "))
		listed++
	}
	fmt.Fprintf(w, "\n%d question(s)\n", listed)
	return nil
}
