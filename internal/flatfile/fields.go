package flatfile

import "strconv"

// Field returns fields[i], or "" when the line had fewer fields. Trailing
// text fields are optional and default to empty.
func Field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// ParseInt parses a required integer field.
func ParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ParseFloat parses a required floating-point field.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// FormatInt renders an integer field.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// FormatFloat renders a floating-point field in its shortest form, so a
// whole-number price round-trips as "1200" rather than "1200.000000".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
