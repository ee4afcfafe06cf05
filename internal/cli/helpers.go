package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sweepr-io/sweepr/internal/resource"
)

// buildRunConfig resolves the flags of the current invocation into an
// immutable RunConfig.
func buildRunConfig(scope string, runsOnly bool) (resource.RunConfig, error) {
	names := append([]string(nil), flagExclude...)
	if flagExcludeFile != "" {
		fromFile, err := loadExclusionFile(flagExcludeFile)
		if err != nil {
			return resource.RunConfig{}, err
		}
		names = append(names, fromFile...)
	}

	return resource.RunConfig{
		DryRun:           flagDryRun,
		SkipConfirmation: flagSkipConfirmation,
		PerItemConfirm:   true,
		Exclusions:       resource.NewExclusionSet(names...),
		Scope:            scope,
		RunsOnly:         runsOnly,
	}, nil
}

// loadExclusionFile reads a YAML list of resource names.
func loadExclusionFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exclusion file: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to parse exclusion file %s: %w", path, err)
	}
	return names, nil
}

// renderPreflight prints what was found, what is excluded, and what
// will be processed, before any confirmation is requested.
func renderPreflight(label string, found, toProcess, excluded []resource.Ref) {
	fmt.Printf("Found %d %s.\n", len(found), label)
	fmt.Printf("%d will be processed.\n", len(toProcess))

	if len(excluded) > 0 {
		fmt.Printf("\nExcluded %s:\n", label)
		for _, ref := range excluded {
			fmt.Printf("- %s\n", ref.Name)
		}
	}

	if len(toProcess) > 0 {
		fmt.Printf("\n%s to process:\n", capitalize(label))
		for _, ref := range toProcess {
			fmt.Printf("- %s\n", ref)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderSummary prints the aggregate counts of a finished run.
func renderSummary(s resource.Summary) {
	fmt.Println("\nSummary:")
	fmt.Printf("  Succeeded:        %d\n", s.Succeeded)
	fmt.Printf("  Failed:           %d\n", s.Failed)
	if s.SkippedNotConfirmed > 0 {
		fmt.Printf("  Not confirmed:    %d\n", s.SkippedNotConfirmed)
	}
	if s.SkippedAlreadyTerminal > 0 {
		fmt.Printf("  Already settled:  %d\n", s.SkippedAlreadyTerminal)
	}
	if s.SkippedExcluded > 0 {
		fmt.Printf("  Excluded:         %d\n", s.SkippedExcluded)
	}
	fmt.Printf("  Total processed:  %d\n", s.Total)
}
