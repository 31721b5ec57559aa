package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check which package managers are available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

func runDoctor(ctx context.Context) error {
	service := newAppService()
	result := service.Doctor(ctx)
	present := color.New(color.FgGreen).SprintFunc()
	absent := color.New(color.FgYellow).SprintFunc()
	for _, probe := range result.Probes {
		if probe.Present {
			fmt.Printf("  %s %s (%s)\n", present("✓"), probe.Kind, probe.Version)
		} else {
			fmt.Printf("  %s %s not found\n", absent("-"), probe.Kind)
		}
	}
	return nil
}
