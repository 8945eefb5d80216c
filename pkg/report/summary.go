package report

import (
	"fmt"
	"io"
	"strings"

	"igunfollow/pkg/compare"
	"igunfollow/pkg/ui"
)

const ruleWidth = 50

// SummaryOptions controls the console summary
type SummaryOptions struct {
	// ShowList prints every non-follower below the counts
	ShowList bool
	Color    bool
}

// RenderSummary formats the counts and, optionally, the non-follower list
func RenderSummary(theme ui.Theme, res compare.Result, showList bool) string {
	var sb strings.Builder

	rule := theme.Rule.Render(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(theme.Title.Render("INSTAGRAM FOLLOWER ANALYSIS") + "\n")
	sb.WriteString(rule + "\n\n")

	count := func(label string, n int) {
		sb.WriteString(fmt.Sprintf("%s %s\n", theme.Label.Render(label+":"), theme.Value.Render(accounts(n))))
	}
	count("You follow", res.Following)
	count("Follow you", res.Followers)
	count("Mutual following", res.Mutual)
	if res.Ignored > 0 {
		count("Ignored", res.Ignored)
	}
	count("Don't follow you back", len(res.NonFollowers))

	if showList && len(res.NonFollowers) > 0 {
		sb.WriteString("\n")
		for _, u := range res.NonFollowers {
			sb.WriteString("  " + theme.Dim.Render("•") + " " + u + "\n")
		}
	}

	return sb.String()
}

// RenderSaved formats the closing line naming the CSV file
func RenderSaved(theme ui.Theme, path string) string {
	rule := theme.Rule.Render(strings.Repeat("=", ruleWidth))
	return fmt.Sprintf("\n%s\n%s %s\n", rule, theme.Success.Render("Results saved to:"), path)
}

// PrintSummary writes the summary to w
func PrintSummary(w io.Writer, res compare.Result, opts SummaryOptions) error {
	theme := ui.NewTheme(ui.NewRenderer(w, opts.Color))
	_, err := io.WriteString(w, RenderSummary(theme, res, opts.ShowList))
	return err
}

func accounts(n int) string {
	if n == 1 {
		return "1 account"
	}
	return fmt.Sprintf("%d accounts", n)
}
