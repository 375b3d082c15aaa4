package validation

import (
	"fmt"
	"strings"
)

// HasErrors reports whether diags contains any LOGIC_* diagnostic — a
// defect in the circuit's behavior rather than its drawing.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if strings.HasPrefix(string(d.Code), "LOGIC_") {
			return true
		}
	}
	return false
}

// HasWarnings reports whether diags contains any VISUAL_* diagnostic.
func HasWarnings(diags []Diagnostic) bool {
	for _, d := range diags {
		if strings.HasPrefix(string(d.Code), "VISUAL_") {
			return true
		}
	}
	return false
}

// FilterByCode returns the subset of diags matching code.
func FilterByCode(diags []Diagnostic, code ErrorCode) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Summary renders a short human-readable report, one line per diagnostic.
func Summary(diags []Diagnostic) string {
	if len(diags) == 0 {
		return "circuit is valid: no issues found"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d issue(s) found:\n", len(diags))
	for _, d := range diags {
		fmt.Fprintf(&b, "  [%s] %s\n", d.Code, d.Message)
	}
	return b.String()
}
