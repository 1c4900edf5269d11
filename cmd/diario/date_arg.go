// Package main provides the entry point for the diario CLI.
package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
)

// daysAgoRegex matches relative forms like "-1" or "-30" (N days ago).
var daysAgoRegex = regexp.MustCompile(`^-(\d+)$`)

// parseDateArg resolves a date argument into a journal date.
// Accepts:
//   - "" or "today" / "hoy": today
//   - "yesterday" / "ayer": yesterday
//   - "-N": N days before today
//   - "YYYY-MM-DD" (month and day may be unpadded)
func parseDateArg(value string) (journal.Date, error) {
	switch value {
	case "", "today", "hoy":
		return journal.Today(), nil
	case "yesterday", "ayer":
		return journal.Today().Add(-1), nil
	}

	if matches := daysAgoRegex.FindStringSubmatch(value); len(matches) == 2 {
		days, err := strconv.Atoi(matches[1])
		if err != nil {
			return journal.Date{}, output.NewUserError(fmt.Sprintf("invalid relative date %q", value))
		}
		return journal.Today().Add(-days), nil
	}

	parsed, err := journal.ParseDate(value)
	if err != nil {
		return journal.Date{}, output.NewUserError(
			fmt.Sprintf("invalid date %q; use YYYY-MM-DD, today/hoy, yesterday/ayer, or -N for N days ago", value))
	}
	return parsed, nil
}

// dateFromArgs resolves the optional positional date of a command.
// No argument means today.
func dateFromArgs(args []string) (journal.Date, error) {
	if len(args) == 0 {
		return journal.Today(), nil
	}
	return parseDateArg(args[0])
}
