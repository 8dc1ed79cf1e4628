package diff

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/nacre/internal/ui/styles"
)

// Render formats a report for the terminal: +/- lines for added and removed
// entries, and an inline character diff for format changes.
func Render(report Report) string {
	if report.Empty() {
		return styles.SuccessStyle.Render("No differences") + "\n"
	}

	var b strings.Builder

	for _, name := range report.AddedEnums {
		b.WriteString(styles.SuccessStyle.Render("+ "+name) + "\n")
	}
	for _, name := range report.RemovedEnums {
		b.WriteString(styles.ErrorStyle.Render("- "+name) + "\n")
	}

	dmp := diffmatchpatch.New()
	for _, ed := range report.Changed {
		b.WriteString(styles.TitleStyle.Render("~ "+ed.Name) + "\n")

		var body strings.Builder
		for _, v := range ed.AddedValues {
			body.WriteString(styles.SuccessStyle.Render("+ "+v) + "\n")
		}
		for _, v := range ed.RemovedValues {
			body.WriteString(styles.ErrorStyle.Render("- "+v) + "\n")
		}
		for _, change := range ed.Changed {
			diffs := dmp.DiffMain(FormatLine(change.Before), FormatLine(change.After), false)
			dmp.DiffCleanupSemantic(diffs)
			body.WriteString("~ " + change.Value + ": " + dmp.DiffPrettyText(diffs) + "\n")
		}
		b.WriteString(indent.String(body.String(), 2))
	}

	return b.String()
}
