package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func rec(fields map[string]any) schemas.Record {
	return schemas.Record{ID: "uc-1", Name: "Customer Checkout", Fields: fields}
}

func TestHasIdentity(t *testing.T) {
	ok, _ := hasIdentity(schemas.Record{ID: "uc-1", Name: "Checkout"})
	assert.True(t, ok)

	ok, evidence := hasIdentity(schemas.Record{ID: "uc-1", Name: "   "})
	assert.False(t, ok)
	assert.Contains(t, evidence, "missing or blank")
}

func TestStringMinLenDistinguishesAbsentFromShort(t *testing.T) {
	check := stringMinLen("description", 50)

	ok, evidence := check(rec(nil))
	assert.False(t, ok)
	assert.Contains(t, evidence, "absent")

	ok, evidence = check(rec(map[string]any{"description": "too short"}))
	assert.False(t, ok)
	assert.Contains(t, evidence, "characters")

	long := "The customer assembles a cart and completes payment through checkout."
	ok, _ = check(rec(map[string]any{"description": long}))
	assert.True(t, ok)
}

func TestFieldPresent(t *testing.T) {
	check := fieldPresent("priority")

	ok, _ := check(rec(nil))
	assert.False(t, ok)

	ok, _ = check(rec(map[string]any{"priority": "  "}))
	assert.False(t, ok, "a blank string does not count as present")

	ok, _ = check(rec(map[string]any{"priority": "high"}))
	assert.True(t, ok)

	// Non-string values only need to exist.
	ok, _ = check(rec(map[string]any{"priority": 2}))
	assert.True(t, ok)
}

func TestStepsComplete(t *testing.T) {
	check := stepsComplete(10)

	ok, _ := check(rec(map[string]any{"steps": []any{}}))
	assert.False(t, ok)

	ok, evidence := check(rec(map[string]any{"steps": []any{
		map[string]any{"action": "submit order", "expectedResult": "short"},
	}}))
	assert.False(t, ok)
	assert.Contains(t, evidence, "expectedResult")

	ok, _ = check(rec(map[string]any{"steps": []any{
		map[string]any{"action": "submit order", "expectedResult": "an order is created and confirmed"},
		map[string]any{"action": "pay", "expectedResult": "payment captured successfully"},
	}}))
	assert.True(t, ok)
}

func TestRefsMinAcceptsBothForms(t *testing.T) {
	check := refsMin("businessGoals", 1)

	ok, _ := check(rec(map[string]any{"businessGoals": []any{"goal-1"}}))
	assert.True(t, ok)

	ok, _ = check(rec(map[string]any{"businessGoals": []any{map[string]any{"id": "goal-1"}}}))
	assert.True(t, ok)

	ok, _ = check(rec(map[string]any{"businessGoals": []any{}}))
	assert.False(t, ok)
}

func TestEachEntryMinLen(t *testing.T) {
	check := eachEntryMinLen("acceptanceCriteria", 15)

	ok, _ := check(rec(map[string]any{"acceptanceCriteria": []any{
		"response time stays under 200ms at p95",
		"ok",
	}}))
	assert.False(t, ok)

	ok, _ = check(rec(map[string]any{"acceptanceCriteria": []any{
		"response time stays under 200ms at p95",
		"orders older than 90 days are archived",
	}}))
	assert.True(t, ok)
}

func TestNameEchoedInDescription(t *testing.T) {
	ok, _ := nameEchoedInDescription(rec(map[string]any{
		"description": "The customer completes checkout by paying for the cart.",
	}))
	assert.True(t, ok)

	ok, _ = nameEchoedInDescription(rec(map[string]any{
		"description": "Something entirely unrelated happens here.",
	}))
	assert.False(t, ok)
}

func TestStrictnessFactor(t *testing.T) {
	assert.Equal(t, 0.5, StrictnessFactor(schemas.CriticalityExperimental))
	assert.Equal(t, 1.0, StrictnessFactor(schemas.CriticalityStandard))
	assert.Equal(t, 1.2, StrictnessFactor(schemas.CriticalityBusinessCritical))
	assert.Equal(t, 1.5, StrictnessFactor(schemas.CriticalityMissionCritical))
	assert.Equal(t, 1.0, StrictnessFactor(schemas.Criticality("made-up")))
}
