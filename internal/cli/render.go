package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"unitdesk/internal/models"
)

// Shared color palette. Honors color.NoColor, which the entry point sets
// from flags/config and terminal detection.
var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
)

const entryTimeLayout = "15:04:05"

func (s *Session) printBanner() {
	titleColor.Fprintln(s.out, "UnitDesk")
	fmt.Fprintln(s.out, "Unit conversions and calculations. Currency rates are a fixed snapshot.")
}

func (s *Session) printMenu() {
	titleColor.Fprintln(s.out, "\nMain menu")
	fmt.Fprintln(s.out, "  1. Calculator")
	fmt.Fprintln(s.out, "  2. Temperature")
	fmt.Fprintln(s.out, "  3. Number Base")
	fmt.Fprintln(s.out, "  4. Logarithm")
	fmt.Fprintln(s.out, "  5. Currency")
	fmt.Fprintln(s.out, "  6. Length")
	fmt.Fprintln(s.out, "  7. View History")
	fmt.Fprintln(s.out, "  8. Quit")
	promptColor.Fprint(s.out, "Choose an option: ")
}

// renderEntry draws the just-recorded operation as a one-row table.
func (s *Session) renderEntry(e models.HistoryEntry) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Category", "Input", "Result"})
	table.Append([]string{string(e.Category), e.Input, e.Result})
	table.Render()
}

// renderHistory draws the session ledger oldest first.
func (s *Session) renderHistory(entries []models.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "History is empty. Run an operation first.")
		return
	}

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "Time", "Category", "Input", "Result"})
	for i, e := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.RecordedAt.Format(entryTimeLayout),
			string(e.Category),
			e.Input,
			e.Result,
		})
	}
	table.Render()
	fmt.Fprintf(s.out, "Entries this session: %d\n", len(entries))
}
