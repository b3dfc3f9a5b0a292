package report

import (
	"fmt"
	"math"

	"github.com/ethpandaops/loadreport/internal/summary"
)

const (
	groupPrefix   = "■"
	detailsPrefix = "↳"
	succMark      = "✓"
	failMark      = "✗"
	nestIndent    = "  "
)

// summarizeCheck renders one check. A failing check spans two lines: the mark
// and name, then the success percentage with the raw counts.
func summarizeCheck(indent string, check *summary.Check, colors *ColorHelper) string {
	if check.Fails == 0 {
		return colors.Success(indent + succMark + " " + check.Name)
	}

	total := float64(check.Passes) + float64(check.Fails)
	percent := math.Floor(100 * float64(check.Passes) / total)

	return colors.Failure(fmt.Sprintf("%s%s %s\n%s %s  %.0f%% — %s %d / %s %d",
		indent, failMark, check.Name,
		indent, detailsPrefix, percent, succMark, check.Passes, failMark, check.Fails,
	))
}

// summarizeGroup renders a group and everything below it in declaration order.
// A named group's header element ends in a newline, leaving a blank line under
// it; unnamed groups add neither header nor indentation.
func summarizeGroup(indent string, group *summary.Group, colors *ColorHelper) []string {
	result := make([]string, 0, len(group.Checks)+2)

	if group.Name != "" {
		result = append(result, indent+groupPrefix+" "+group.Name+"\n")
		indent += nestIndent
	}

	for _, check := range group.Checks {
		if check == nil {
			continue
		}

		result = append(result, summarizeCheck(indent, check, colors))
	}

	if len(group.Checks) > 0 {
		result = append(result, "")
	}

	for _, sub := range group.Groups {
		if sub == nil {
			continue
		}

		result = append(result, summarizeGroup(indent, sub, colors)...)
	}

	return result
}
