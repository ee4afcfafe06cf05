package cli

import (
	"github.com/spf13/cobra"

	"github.com/sweepr-io/sweepr/internal/azcli"
	"github.com/sweepr-io/sweepr/internal/provider"
	"github.com/sweepr-io/sweepr/internal/resource"
)

var (
	vargroupsProvider     string
	vargroupsOrganization string
	vargroupsProject      string
	vargroupsRegion       string
)

var vargroupsCmd = &cobra.Command{
	Use:   "vargroups",
	Short: "Delete variable groups",
	Long: `Deletes all variable groups in the selected scope, minus exclusions:
Azure DevOps library variable groups (provider azdo) or Secrets Manager
secrets (provider aws).`,
	RunE: runVargroups,
}

func init() {
	vargroupsCmd.Flags().StringVar(&vargroupsProvider, "provider", "azdo", "Resource provider (azdo, aws)")
	vargroupsCmd.Flags().StringVarP(&vargroupsOrganization, "organization", "o", "", "Azure DevOps organization name")
	vargroupsCmd.Flags().StringVarP(&vargroupsProject, "project", "p", "", "Azure DevOps project name")
	vargroupsCmd.Flags().StringVar(&vargroupsRegion, "region", "", "AWS region")
}

func runVargroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := buildRunConfig("", false)
	if err != nil {
		return err
	}

	prov, err := registry.Resolve(ctx, vargroupsProvider, resource.KindVariableGroup, provider.Options{
		Runner:       azcli.ExecRunner{},
		Organization: vargroupsOrganization,
		Project:      vargroupsProject,
		Region:       vargroupsRegion,
	})
	if err != nil {
		return err
	}

	return sweep(ctx, cfg, prov, sweepOpts{
		Label:  "variable groups",
		Phrase: "DELETE ALL VARIABLE GROUPS",
	})
}
