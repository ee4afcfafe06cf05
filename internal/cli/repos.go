package cli

import (
	"github.com/spf13/cobra"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

var (
	reposProvider     string
	reposOrganization string
	reposProject      string
	reposRegion       string
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Delete source repositories",
	Long: `Deletes all source repositories in the selected scope, minus
exclusions: Azure DevOps Git repositories (provider azdo) or CodeCommit
repositories (provider aws).`,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().StringVar(&reposProvider, "provider", "azdo", "Resource provider (azdo, aws)")
	reposCmd.Flags().StringVarP(&reposOrganization, "organization", "o", "", "Azure DevOps organization name")
	reposCmd.Flags().StringVarP(&reposProject, "project", "p", "", "Azure DevOps project name")
	reposCmd.Flags().StringVar(&reposRegion, "region", "", "AWS region")
}

func runRepos(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := buildRunConfig("", false)
	if err != nil {
		return err
	}

	prov, err := registry.Resolve(ctx, reposProvider, resource.KindRepository, provider.Options{
		Runner:       azcli.ExecRunner{},
		Organization: reposOrganization,
		Project:      reposProject,
		Region:       reposRegion,
	})
	if err != nil {
		return err
	}

	return sweep(ctx, cfg, prov, sweepOpts{
		Label:  "repositories",
		Phrase: "DELETE ALL REPOSITORIES",
	})
}
