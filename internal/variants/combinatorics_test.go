package variants

import (
	"testing"

	"github.com/google/uuid"
)

func idList(n int) []uuid.UUID {
	out := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, uuid.New())
	}
	return out
}

func TestGenerateCombinationsCounts(t *testing.T) {
	t.Parallel()

	sizes := idList(2)
	colors := idList(3)

	got := GenerateCombinations([][]uuid.UUID{sizes, colors})
	if len(got) != 6 {
		t.Fatalf("expected 6 combinations, got %d", len(got))
	}

	// every combination is distinct by canonical key
	seen := map[string]struct{}{}
	for _, combo := range got {
		if len(combo) != 2 {
			t.Fatalf("expected one value per variant, got %v", combo)
		}
		key := CombinationKey(combo)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate combination %s", key)
		}
		seen[key] = struct{}{}
	}
}

func TestGenerateCombinationsPreservesVariantOrder(t *testing.T) {
	t.Parallel()

	sizes := idList(2)
	colors := idList(2)

	got := GenerateCombinations([][]uuid.UUID{sizes, colors})
	want := [][]uuid.UUID{
		{sizes[0], colors[0]},
		{sizes[0], colors[1]},
		{sizes[1], colors[0]},
		{sizes[1], colors[1]},
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Fatalf("combination %d out of order: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestGenerateCombinationsZeroVariants(t *testing.T) {
	t.Parallel()

	if got := GenerateCombinations(nil); len(got) != 0 {
		t.Fatalf("expected no combinations for zero variants, got %v", got)
	}
}

func TestCombinationKeyIsOrderIndependent(t *testing.T) {
	t.Parallel()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	if CombinationKey([]uuid.UUID{a, b, c}) != CombinationKey([]uuid.UUID{c, a, b}) {
		t.Fatal("expected identical keys for permuted value sets")
	}
	if CombinationKey([]uuid.UUID{a, b}) == CombinationKey([]uuid.UUID{a, c}) {
		t.Fatal("expected different keys for different sets")
	}
}

func TestMissingCombinationsSkipsExistingSets(t *testing.T) {
	t.Parallel()

	sizes := idList(2)
	colors := idList(3)
	generated := GenerateCombinations([][]uuid.UUID{sizes, colors})

	existing := map[string]struct{}{}
	for _, combo := range generated {
		// store permuted order to prove identity ignores array order
		permuted := []uuid.UUID{combo[1], combo[0]}
		existing[CombinationKey(permuted)] = struct{}{}
	}

	if missing := MissingCombinations(generated, existing); len(missing) != 0 {
		t.Fatalf("expected regeneration to find nothing new, got %d", len(missing))
	}

	partial := map[string]struct{}{CombinationKey(generated[0]): {}}
	if missing := MissingCombinations(generated, partial); len(missing) != 5 {
		t.Fatalf("expected 5 missing combinations, got %d", len(missing))
	}
}
