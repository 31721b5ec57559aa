package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devsetup/internal/app"
	"devsetup/internal/types"
)

type installOptions struct {
	WebDev         bool
	DataScience    bool
	DotNet         bool
	MobileDev      bool
	DevOps         bool
	Tools          string
	CustomFile     string
	StacksFile     string
	Editor         string
	NonInteractive bool
	DryRun         bool
	Force          bool
	Choco          bool
	Scoop          bool
	Winget         bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a development stack or an explicit package list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.WebDev, "web-dev", false, "Install the web development stack")
	cmd.Flags().BoolVar(&opts.DataScience, "data-science", false, "Install the data science stack")
	cmd.Flags().BoolVar(&opts.DotNet, "dotnet", false, "Install the .NET development stack")
	cmd.Flags().BoolVar(&opts.MobileDev, "mobile-dev", false, "Install the mobile development stack")
	cmd.Flags().BoolVar(&opts.DevOps, "devops", false, "Install the DevOps stack")
	cmd.Flags().StringVar(&opts.Tools, "tools", "", "Comma-separated package list")
	cmd.Flags().StringVar(&opts.CustomFile, "custom", "", "File with one package per line (# comments ignored)")
	cmd.Flags().StringVar(&opts.StacksFile, "stacks-file", "", "Stack catalog override file")
	cmd.Flags().StringVar(&opts.Editor, "editor", "", "Editor choice (vscode, alternate, both, none)")
	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "Suppress prompts and use defaults")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report intended actions without installing")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&opts.Choco, "choco", false, "Force the Chocolatey backend")
	cmd.Flags().BoolVar(&opts.Scoop, "scoop", false, "Force the Scoop backend")
	cmd.Flags().BoolVar(&opts.Winget, "winget", false, "Force the Winget backend")

	_ = viper.BindPFlag("tools", cmd.Flags().Lookup("tools"))
	_ = viper.BindPFlag("custom", cmd.Flags().Lookup("custom"))
	_ = viper.BindPFlag("stacks_file", cmd.Flags().Lookup("stacks-file"))
	_ = viper.BindPFlag("editor", cmd.Flags().Lookup("editor"))
	_ = viper.BindPFlag("non_interactive", cmd.Flags().Lookup("non-interactive"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		Stack:          selectedStack(opts),
		Tools:          resolveString(cmd, opts.Tools, "tools", "tools"),
		CustomFile:     resolveString(cmd, opts.CustomFile, "custom", "custom"),
		StacksFile:     resolveString(cmd, opts.StacksFile, "stacks_file", "stacks-file"),
		Manager:        selectedManager(opts),
		Editor:         types.EditorChoice(resolveString(cmd, opts.Editor, "editor", "editor")),
		DryRun:         resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
		NonInteractive: resolveBool(cmd, opts.NonInteractive, "non_interactive", "non-interactive"),
		Force:          resolveBool(cmd, opts.Force, "force", "force"),
	})
	printReport(result)
	return err
}

// selectedStack maps the stack flags to a stack name; the first flag
// set wins, in the documented priority order.
func selectedStack(opts installOptions) string {
	switch {
	case opts.WebDev:
		return "web-dev"
	case opts.DataScience:
		return "data-science"
	case opts.DotNet:
		return "dotnet"
	case opts.MobileDev:
		return "mobile-dev"
	case opts.DevOps:
		return "devops"
	}
	return ""
}

func selectedManager(opts installOptions) types.ManagerKind {
	switch {
	case opts.Choco:
		return types.ManagerChocolatey
	case opts.Scoop:
		return types.ManagerScoop
	case opts.Winget:
		return types.ManagerWinget
	}
	return ""
}

func printReport(result app.InstallResult) {
	if len(result.Report.Results) == 0 {
		return
	}
	success := color.New(color.FgGreen).SprintFunc()
	failure := color.New(color.FgRed).SprintFunc()
	for _, entry := range result.Report.Results {
		switch entry.Status {
		case types.InstallStatusFailed:
			fmt.Printf("  %s %s (%s)\n", failure("✗"), entry.Spec.Name, entry.Detail)
		case types.InstallStatusDryRun:
			fmt.Printf("  %s %s (%s)\n", success("✓"), entry.Spec.Name, entry.Detail)
		default:
			fmt.Printf("  %s %s\n", success("✓"), entry.Spec.Name)
		}
	}
	fmt.Printf("%d succeeded, %d failed (backend: %s)\n",
		result.Report.Succeeded(), result.Report.FailedCount(), result.Report.Manager)
	if result.ReportPath != "" {
		fmt.Printf("report: %s\n", result.ReportPath)
	}
}
