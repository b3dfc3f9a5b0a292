package output

import (
	"strconv"
	"strings"

	"github.com/ethpandaops/loadreport/internal/inputs"
	"github.com/ethpandaops/loadreport/internal/report"
)

const noEndpoints = "-"

// ScanTable formats scanned folders as a table of valid and invalid documents
// and the endpoints each scenario exercises.
func ScanTable(folders []*inputs.Folder, colors *report.ColorHelper) string {
	if len(folders) == 0 {
		return "No input folders found"
	}

	var (
		headers      = []string{"Folder", "Valid", "Invalid", "Endpoints"}
		rows         = make([][]string, 0, len(folders))
		totalValid   int
		totalInvalid int
	)

	for _, folder := range folders {
		totalValid += len(folder.Documents)
		totalInvalid += len(folder.Invalid)

		invalid := strconv.Itoa(len(folder.Invalid))
		if len(folder.Invalid) > 0 {
			invalid = colors.Failure(invalid)
		}

		endpoints := noEndpoints
		if len(folder.Endpoints) > 0 {
			endpoints = strings.Join(folder.Endpoints, "\n")
		}

		rows = append(rows, []string{
			folder.Name,
			colors.Success(strconv.Itoa(len(folder.Documents))),
			invalid,
			endpoints,
		})
	}

	footer := []string{"Total", strconv.Itoa(totalValid), strconv.Itoa(totalInvalid), ""}

	return RenderTableString(headers, rows, WithFooter(footer))
}

// InvalidDetails lists every invalid document with its validation error.
func InvalidDetails(folders []*inputs.Folder, colors *report.ColorHelper) string {
	var builder strings.Builder

	for _, folder := range folders {
		for _, file := range folder.Invalid {
			builder.WriteString(colors.Failure("✗ " + folder.Name + "/" + file.Name))
			builder.WriteString("\n  ")
			builder.WriteString(colors.Muted(file.Err.Error()))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
