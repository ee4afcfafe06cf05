package cli

import (
	"github.com/spf13/cobra"

	"github.com/sweepr-io/sweepr/internal/logging"
)

var (
	flagDryRun           bool
	flagSkipConfirmation bool
	flagExclude          []string
	flagExcludeFile      string
	flagLogLevel         string
)

var rootCmd = &cobra.Command{
	Use:   "sweepr",
	Short: "Bulk deletion of cloud and DevOps resources",
	Long: `Sweepr enumerates a collection of deletable resources, applies an
exclusion filter, and deletes (or cancels) what remains — behind explicit
typed confirmation.

Every command supports --dry-run, which prints what would be deleted
without touching the remote API, and --exclude to keep named resources.
Individual deletion failures are reported in the final summary and never
abort the run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(flagLogLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "List what would be deleted without deleting anything")
	rootCmd.PersistentFlags().BoolVar(&flagSkipConfirmation, "skip-confirmation", false, "Skip the global and per-item confirmation prompts")
	rootCmd.PersistentFlags().StringArrayVarP(&flagExclude, "exclude", "e", nil, "Resource name to exclude from deletion (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagExcludeFile, "exclude-file", "", "YAML file holding a list of resource names to exclude")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(pipelinesCmd)
	rootCmd.AddCommand(vargroupsCmd)
	rootCmd.AddCommand(versionCmd)
}
