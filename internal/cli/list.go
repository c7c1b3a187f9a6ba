package cli

import (
	"fmt"
	"io"

	"github.com/me/noblock/internal/registry"
	"github.com/me/noblock/internal/task"
	"github.com/me/noblock/pkg/model"
	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List registered tasks in scheduling order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			// Task output is discarded: nothing is stepped here.
			reg, err := registry.NewDefault(io.Discard, logger)
			if err != nil {
				return fmt.Errorf("build task registry: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s  %-10s  %s\n", "ID", "NAME", "DISPATCH")
			fmt.Fprintf(out, "%-4s  %-10s  %s\n", "--", "----", "--------")
			for id := model.TaskID(0); int(id) < reg.Count(); id++ {
				step, err := reg.StepOf(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-4d  %-10s  %s\n", int(id), id, dispatchKind(step))
			}
			return nil
		},
	}
}

// dispatchKind names the state-dispatch strategy a task uses.
func dispatchKind(s task.Stepper) string {
	switch s.(type) {
	case *task.Greeter:
		return "table"
	case *task.Toggler:
		return "branch"
	}
	return "unknown"
}
