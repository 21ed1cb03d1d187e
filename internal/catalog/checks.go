// File: internal/catalog/checks.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// CheckFunc evaluates one criterion against one record. It returns whether
// the condition holds plus a short evidence string for the report. Checks
// are total: any record, however sparse, yields a result.
type CheckFunc func(r schemas.Record) (bool, string)

// hasIdentity verifies the two identity fields every record type mandates.
func hasIdentity(r schemas.Record) (bool, string) {
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
		return false, "id or name is missing or blank"
	}
	return true, fmt.Sprintf("id %q, name %q", r.ID, r.Name)
}

// stringMinLen requires the field to be present, a string, and at least n
// characters after trimming. A present-but-short field reports its actual
// length; an absent field reports absence. The two are distinct findings.
func stringMinLen(field string, n int) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		s, ok := r.StringField(field)
		if !ok {
			return false, fmt.Sprintf("field %q is absent", field)
		}
		got := len(strings.TrimSpace(s))
		if got < n {
			return false, fmt.Sprintf("field %q has %d characters, needs %d", field, got, n)
		}
		return true, fmt.Sprintf("field %q has %d characters", field, got)
	}
}

// fieldPresent requires the field to exist with a non-empty value.
func fieldPresent(field string) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		v, ok := r.Fields[field]
		if !ok {
			return false, fmt.Sprintf("field %q is absent", field)
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return false, fmt.Sprintf("field %q is present but empty", field)
		}
		return true, fmt.Sprintf("field %q is set", field)
	}
}

// listMin requires the field to be a list with at least n entries.
func listMin(field string, n int) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		l, ok := r.ListField(field)
		if !ok {
			return false, fmt.Sprintf("field %q is absent or not a list", field)
		}
		if len(l) < n {
			return false, fmt.Sprintf("field %q has %d entries, needs %d", field, len(l), n)
		}
		return true, fmt.Sprintf("field %q has %d entries", field, len(l))
	}
}

// refsMin requires the field to resolve to at least n cross-references, in
// either the plain-string or the {id} object form.
func refsMin(field string, n int) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		refs, ok := r.RefsField(field)
		if !ok {
			return false, fmt.Sprintf("field %q is absent", field)
		}
		if len(refs) < n {
			return false, fmt.Sprintf("field %q resolves to %d references, needs %d", field, len(refs), n)
		}
		return true, fmt.Sprintf("field %q resolves to %d references", field, len(refs))
	}
}

// stepsComplete requires at least one step, each carrying a non-empty
// action and an expectedResult of at least minResult characters.
func stepsComplete(minResult int) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		steps, ok := r.MapListField("steps")
		if !ok {
			return false, `field "steps" is absent`
		}
		if len(steps) == 0 {
			return false, `field "steps" is empty`
		}
		for i, step := range steps {
			action, _ := step["action"].(string)
			if strings.TrimSpace(action) == "" {
				return false, fmt.Sprintf("step %d has no action", i+1)
			}
			result, _ := step["expectedResult"].(string)
			if len(strings.TrimSpace(result)) < minResult {
				return false, fmt.Sprintf("step %d expectedResult is shorter than %d characters", i+1, minResult)
			}
		}
		return true, fmt.Sprintf("all %d steps carry an action and expected result", len(steps))
	}
}

// eachEntryMinLen requires every string entry of a list field to be at
// least n characters. Used for "acceptance criteria are measurable" style
// checks.
func eachEntryMinLen(field string, n int) CheckFunc {
	return func(r schemas.Record) (bool, string) {
		l, ok := r.ListField(field)
		if !ok {
			return false, fmt.Sprintf("field %q is absent or not a list", field)
		}
		if len(l) == 0 {
			return false, fmt.Sprintf("field %q is empty", field)
		}
		for i, item := range l {
			s, _ := item.(string)
			if len(strings.TrimSpace(s)) < n {
				return false, fmt.Sprintf("entry %d of %q is shorter than %d characters", i+1, field, n)
			}
		}
		return true, fmt.Sprintf("all %d entries of %q meet the minimum length", len(l), field)
	}
}

// nameEchoedInDescription is the lexical terminology-consistency heuristic:
// at least half of the record name's significant words must reappear in the
// description. No semantic understanding, just word overlap.
func nameEchoedInDescription(r schemas.Record) (bool, string) {
	desc, ok := r.StringField("description")
	if !ok {
		return false, `field "description" is absent`
	}
	lowerDesc := strings.ToLower(desc)
	var total, found int
	for _, word := range strings.Fields(strings.ToLower(r.Name)) {
		if len(word) < 4 {
			continue // skip articles and prepositions
		}
		total++
		if strings.Contains(lowerDesc, word) {
			found++
		}
	}
	if total == 0 {
		return true, "record name has no significant terms to match"
	}
	if found*2 < total {
		return false, fmt.Sprintf("only %d of %d name terms appear in the description", found, total)
	}
	return true, fmt.Sprintf("%d of %d name terms appear in the description", found, total)
}
