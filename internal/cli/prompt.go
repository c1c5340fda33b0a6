package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// prompt prints the label and reads one line. On end of input it sets the
// eof flag and returns "".
func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		a.eof = true
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// promptInt reads an integer, re-prompting until the input parses.
func (a *App) promptInt(label string) int {
	for {
		s := strings.TrimSpace(a.prompt(label))
		if a.eof {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n
		}
		fmt.Fprintln(a.out, "Invalid number. Please enter a valid integer.")
	}
}

// promptPrice reads a non-negative number, re-prompting until valid.
func (a *App) promptPrice(label string) float64 {
	for {
		s := strings.TrimSpace(a.prompt(label))
		if a.eof {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && f >= 0 {
			return f
		}
		fmt.Fprintln(a.out, "Invalid price. Please enter a valid number (>= 0).")
	}
}

// promptOptional reads a line where blank means "keep the stored value".
func (a *App) promptOptional(label string) *string {
	s := a.prompt(label)
	if a.eof || s == "" {
		return nil
	}
	return &s
}

// promptOptionalPrice reads a non-negative number where blank means "keep
// the stored value". An explicit 0 is a real value, not a sentinel.
func (a *App) promptOptionalPrice(label string) *float64 {
	for {
		s := strings.TrimSpace(a.prompt(label))
		if a.eof || s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && f >= 0 {
			return &f
		}
		fmt.Fprintln(a.out, "Invalid price. Please enter a valid number (>= 0) or leave blank to keep.")
	}
}
