package variants

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// CombinationKey returns the canonical order-independent identity of a value
// set: the sorted value ids joined with a comma. Two combinations are the
// same combination exactly when their keys match.
func CombinationKey(valueIDs []uuid.UUID) string {
	ids := make([]string, 0, len(valueIDs))
	for _, id := range valueIDs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// GenerateCombinations returns the cartesian product of the supplied value
// lists. The outer slice order follows the variant creation order and each
// combination lists one value per variant in that same order, so iteration
// is deterministic. Zero variants produce no combinations. Callers must
// reject variants with zero values before generating; an empty inner list
// collapses the product to nothing.
func GenerateCombinations(valueLists [][]uuid.UUID) [][]uuid.UUID {
	if len(valueLists) == 0 {
		return nil
	}

	result := [][]uuid.UUID{{}}
	for _, values := range valueLists {
		next := make([][]uuid.UUID, 0, len(result)*len(values))
		for _, prefix := range result {
			for _, value := range values {
				combo := make([]uuid.UUID, 0, len(prefix)+1)
				combo = append(combo, prefix...)
				combo = append(combo, value)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

// MissingCombinations filters the generated value sets down to the ones not
// yet present in existingKeys, comparing by canonical key so re-generation
// is safe to invoke repeatedly regardless of stored array order.
func MissingCombinations(generated [][]uuid.UUID, existingKeys map[string]struct{}) [][]uuid.UUID {
	missing := make([][]uuid.UUID, 0, len(generated))
	for _, combo := range generated {
		if _, ok := existingKeys[CombinationKey(combo)]; ok {
			continue
		}
		missing = append(missing, combo)
	}
	return missing
}
