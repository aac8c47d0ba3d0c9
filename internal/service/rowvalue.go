package service

import (
	"fmt"
	"strconv"
	"strings"
)

// rowValue pulls the first non-empty value matching any of the candidate
// column names. Candidates are tried verbatim first; if none hit, each is
// retried against the row's actual headers with case and punctuation
// stripped, so "Student ID", "studentId" and "STUDENT-ID" all resolve to
// the same field.
func rowValue(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := stringify(row[key]); v != "" {
			return v
		}
	}

	for _, key := range keys {
		normalized := normalizeColumn(key)
		for header, raw := range row {
			if normalizeColumn(header) == normalized {
				if v := stringify(raw); v != "" {
					return v
				}
			}
		}
	}

	return ""
}

// rowInt is rowValue for numeric columns, with a fallback used when the
// cell is missing or unparsable.
func rowInt(row map[string]any, fallback int, keys ...string) int {
	v := rowValue(row, keys...)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Spreadsheets often deliver integers as "2.0".
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return fallback
		}
		return int(f)
	}
	return n
}

func rowFloat(row map[string]any, keys ...string) (float64, bool) {
	v := rowValue(row, keys...)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func normalizeColumn(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}

// rowColumns reports the headers actually present, for diagnosing alias
// mismatches in import error messages.
func rowColumns(row map[string]any) []string {
	columns := make([]string, 0, len(row))
	for header := range row {
		columns = append(columns, header)
	}
	return columns
}
