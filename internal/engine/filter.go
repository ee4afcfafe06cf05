// Package engine implements the list -> filter -> confirm -> act ->
// poll -> report pipeline shared by every resource kind.
package engine

import "github.com/sweepr-io/sweepr/internal/resource"

// Partition splits resources into those to process and those excluded
// by name. Both subsequences preserve the input order. An exclusion
// name that matches nothing is ignored; exclusion is a filter, not a
// validation step.
func Partition(resources []resource.Ref, exclusions resource.ExclusionSet) (toProcess, excluded []resource.Ref) {
	for _, ref := range resources {
		if exclusions.Contains(ref.Name) {
			excluded = append(excluded, ref)
		} else {
			toProcess = append(toProcess, ref)
		}
	}
	return toProcess, excluded
}
