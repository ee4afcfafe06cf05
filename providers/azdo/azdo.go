// Package azdo deletes Azure DevOps resources (repositories, variable
// groups, pipelines, pipeline runs) through the az CLI devops
// extension.
//
// Every call passes --organization and --project explicitly instead of
// mutating the az CLI's configured defaults.
package azdo

import "strconv"

func orgURL(organization string) string {
	return "https://dev.azure.com/" + organization + "/"
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
