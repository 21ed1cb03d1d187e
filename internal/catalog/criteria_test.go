package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func TestForTypeOrdering(t *testing.T) {
	for _, rt := range schemas.KnownRecordTypes() {
		specs := ForType(rt)
		if !HasCatalog(rt) {
			assert.Empty(t, specs)
			continue
		}
		require.NotEmpty(t, specs, "type %s should have a catalog", rt)

		sorted := sort.SliceIsSorted(specs, func(i, j int) bool {
			a, b := specs[i], specs[j]
			if a.Level != b.Level {
				return a.Level < b.Level
			}
			if a.Dimension != b.Dimension {
				return a.Dimension < b.Dimension
			}
			return a.ID < b.ID
		})
		assert.True(t, sorted, "catalog for %s must iterate by (level, dimension, id)", rt)
	}
}

func TestEveryCriterionWellFormed(t *testing.T) {
	for _, rt := range schemas.KnownRecordTypes() {
		for _, spec := range ForType(rt) {
			assert.NotEmpty(t, spec.ID)
			assert.Equal(t, rt, spec.RecordType)
			assert.GreaterOrEqual(t, spec.Level, schemas.LevelInitial)
			assert.LessOrEqual(t, spec.Level, schemas.MaxLevel)
			assert.Greater(t, spec.Weight, 0.0)
			assert.NotNil(t, spec.Check, "criterion %s has no predicate", spec.ID)

			byID, ok := ByID(spec.ID)
			require.True(t, ok)
			assert.Equal(t, spec.RecordType, byID.RecordType)
		}
	}
}

func TestEveryTypeStartsWithIdentity(t *testing.T) {
	// Level 1 must be attainable by any record that merely exists with an
	// id and a name, so the only required Initial criterion is identity.
	for _, rt := range schemas.KnownRecordTypes() {
		if !HasCatalog(rt) {
			continue
		}
		var initial []CriterionSpec
		for _, spec := range ForType(rt) {
			if spec.Level == schemas.LevelInitial && spec.Required {
				initial = append(initial, spec)
			}
		}
		require.Len(t, initial, 1, "type %s", rt)
		ok, _ := initial[0].Check(schemas.Record{ID: "x-1", Name: "Anything"})
		assert.True(t, ok)
	}
}

func TestHasCatalog(t *testing.T) {
	assert.True(t, HasCatalog(schemas.RecordTypeUseCase))
	assert.True(t, HasCatalog(schemas.RecordTypeActor))
	// Steps are assessed as part of their parent use case.
	assert.False(t, HasCatalog(schemas.RecordTypeUseCaseStep))
	assert.False(t, HasCatalog(schemas.RecordType("mystery")))
}

func TestByIDUnknown(t *testing.T) {
	_, ok := ByID("no-such-criterion")
	assert.False(t, ok)
}
