package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"walletwise/internal/analytics"
	"walletwise/internal/category"
	"walletwise/internal/models"
	"walletwise/internal/money"
)

// FormatCents renders an amount in dollars, e.g. -1234 cents as "-$12.34".
func FormatCents(c money.Cents) string {
	d := c.Decimal()
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// ParseAmount converts a dollar string such as "25.5" into cents. More than
// two decimal places, or a value too large to store, is rejected.
func ParseAmount(s string) (money.Cents, error) {
	c, err := money.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return c, nil
}

// RenderSummary writes the budget summary: totals, per-category progress and
// over-budget alerts.
func RenderSummary(w io.Writer, s analytics.BudgetSummary) error {
	title := fmt.Sprintf("Budget summary (%s, %s to %s)", s.Period,
		s.Window.Start.Format("2006-01-02"), s.Window.End.Format("2006-01-02"))
	if _, err := fmt.Fprintln(w, FormatTitle(title)); err != nil {
		return err
	}

	totals := strings.Join([]string{
		"Budgeted   " + FormatCents(s.TotalBudgeted),
		"Spent      " + FormatCents(s.TotalSpent) + SubtleStyle.Render(fmt.Sprintf(" (%d%%)", s.SpentPercentage)),
		"Remaining  " + amountStyle(s.TotalRemaining).Render(FormatCents(s.TotalRemaining)),
	}, "\n")
	if _, err := fmt.Fprintln(w, BoxStyle.Render(totals)); err != nil {
		return err
	}

	if len(s.Categories) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			TableHeaderStyle.Render("Category"),
			TableHeaderStyle.Render("Budgeted"),
			TableHeaderStyle.Render("Spent"),
			TableHeaderStyle.Render("Remaining"),
			TableHeaderStyle.Render("Progress"))
		for _, c := range s.Categories {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				c.Category,
				FormatCents(c.Budgeted),
				FormatCents(c.Spent),
				amountStyle(c.Remaining).Render(FormatCents(c.Remaining)),
				progressBar(c.Progress, c.Over))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(s.Alerts) == 0 {
		_, err := fmt.Fprintln(w, FormatSuccess("All categories are within budget"))
		return err
	}
	for _, a := range s.Alerts {
		msg := fmt.Sprintf("%s is over budget by %s", a.Category, FormatCents(a.Overage))
		if _, err := fmt.Fprintln(w, FormatError(msg)); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrends writes the spending-by-category table and the cash flow table
// for the trend window.
func RenderTrends(w io.Writer, spending []analytics.SpendingPoint, cashFlow []analytics.CashFlowPoint) error {
	if _, err := fmt.Fprintln(w, FormatTitle("Spending by category")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{TableHeaderStyle.Render("")}
	for _, b := range category.Buckets {
		header = append(header, TableHeaderStyle.Render(string(b)))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, p := range spending {
		row := []string{p.Name}
		for _, b := range category.Buckets {
			row = append(row, FormatCents(p.Totals[b]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\n"+FormatTitle("Income vs expenses")); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render(""),
		TableHeaderStyle.Render("Income"),
		TableHeaderStyle.Render("Expenses"),
		TableHeaderStyle.Render("Net"))
	for _, p := range cashFlow {
		net := p.Income - p.Expenses
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name,
			FormatCents(p.Income), FormatCents(p.Expenses), amountStyle(net).Render(FormatCents(net)))
	}
	return tw.Flush()
}

// RenderGoal writes a one-line confirmation of a savings goal's progress.
func RenderGoal(w io.Writer, g *models.SavingsGoal) error {
	progress := analytics.Progress(g.InitialAmount, g.TargetAmount)
	msg := fmt.Sprintf("%s: %s of %s saved", g.GoalName, FormatCents(g.InitialAmount), FormatCents(g.TargetAmount))
	_, err := fmt.Fprintln(w, FormatSuccess(msg)+" "+progressBar(progress, false))
	return err
}

// RenderSavings writes every goal's progress and how much saved money is
// still unallocated.
func RenderSavings(w io.Writer, o analytics.SavingsOverview) error {
	if _, err := fmt.Fprintln(w, FormatTitle("Savings goals")); err != nil {
		return err
	}

	totals := strings.Join([]string{
		"Saved        " + FormatCents(o.TotalSavings),
		"Allocated    " + FormatCents(o.TotalAllocated),
		"Unallocated  " + amountStyle(o.Unallocated).Render(FormatCents(o.Unallocated)),
		"Target       " + FormatCents(o.TotalTarget),
	}, "\n")
	if _, err := fmt.Fprintln(w, BoxStyle.Render(totals)); err != nil {
		return err
	}

	if len(o.Goals) == 0 {
		_, err := fmt.Fprintln(w, FormatWarning("No savings goals yet"))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Goal"),
		TableHeaderStyle.Render("Saved"),
		TableHeaderStyle.Render("Target"),
		TableHeaderStyle.Render("Remaining"),
		TableHeaderStyle.Render("Progress"))
	for _, g := range o.Goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			g.GoalName,
			FormatCents(g.Saved),
			FormatCents(g.Target),
			FormatCents(g.Remaining),
			progressBar(g.Progress, false))
	}
	return tw.Flush()
}

func amountStyle(v money.Cents) lipgloss.Style {
	if v < 0 {
		return ErrorStyle
	}
	return SuccessStyle
}

// progressBar draws a ten-cell bar for a 0-100 percentage.
func progressBar(pct float64, over bool) string {
	filled := int(pct / 10)
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", 10-filled)
	style := SuccessStyle
	if over {
		style = ErrorStyle
	}
	return style.Render(fmt.Sprintf("[%s] %.0f%%", bar, pct))
}
