package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devsetup/internal/app"
)

type stacksOptions struct {
	StacksFile string
}

func newStacksCommand() *cobra.Command {
	opts := stacksOptions{}
	cmd := &cobra.Command{
		Use:   "stacks",
		Short: "List the available development stacks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStacks(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.StacksFile, "stacks-file", "", "Stack catalog override file")
	_ = viper.BindPFlag("stacks_file", cmd.Flags().Lookup("stacks-file"))
	return cmd
}

func runStacks(ctx context.Context, cmd *cobra.Command, opts stacksOptions) error {
	service := newAppService()
	result, err := service.Stacks(ctx, app.StacksRequest{
		StacksFile: resolveString(cmd, opts.StacksFile, "stacks_file", "stacks-file"),
	})
	if err != nil {
		return err
	}
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, stack := range result.Stacks {
		fmt.Printf("%s: %s\n", header(stack.Name), stack.Description)
		fmt.Printf("  packages: %s\n", strings.Join(stack.Packages, ", "))
		if len(stack.PipPackages) > 0 {
			fmt.Printf("  pip: %s\n", strings.Join(stack.PipPackages, ", "))
		}
		if len(stack.Extensions) > 0 {
			fmt.Printf("  extensions: %s\n", strings.Join(stack.Extensions, ", "))
		}
	}
	return nil
}
