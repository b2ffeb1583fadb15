package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"submatch/internal/deps"
)

func newDepsCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check that the required external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := deps.Check(*env.ffmpegBinary, *env.ffprobeBinary)

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, status.Description, state})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tool", "Command", "Purpose", "Status"}, rows))

			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}
