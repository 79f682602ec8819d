package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

// NewArchetypesCommand lists the archetype table
func NewArchetypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List archetypes in match order with their tier conditions",
		Long: `List every archetype in table order. Matching walks this order and the
first archetype whose conditions all hold wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listArchetypes(bank.Default().Archetypes(), cmd.OutOrStdout())
		},
	}
}

func listArchetypes(archetypes []models.Archetype, w io.Writer) error {
	for i, a := range archetypes {
		conditions := make([]string, 0, len(a.Conditions))
		for _, axis := range a.ConditionAxes() {
			conditions = append(conditions, fmt.Sprintf("%s=%s", axis.Label(), a.Conditions[axis]))
		}
		dominant := make([]string, len(a.DominantAxes))
		for j, axis := range a.DominantAxes {
			dominant[j] = axis.Label()
		}

		fmt.Fprintf(w, "%2d. %s\n", i+1, a.Name)
		if a.Description != "" {
			fmt.Fprintf(w, "    %s\n", a.Description)
		}
		fmt.Fprintf(w, "    requires: %s\n", strings.Join(conditions, ", "))
		if len(dominant) > 0 {
			fmt.Fprintf(w, "    dominant: %s\n", strings.Join(dominant, ", "))
		}
	}
	return nil
}
