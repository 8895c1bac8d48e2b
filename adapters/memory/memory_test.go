package memory

import (
	"context"
	"testing"

	"gomendel/domain/trait"
	apperrors "gomendel/internal/errors"
	"gomendel/models"
	"gomendel/ports"
)

func seedRegistry(t *testing.T) *TraitRegistryImpl {
	t.Helper()
	reg := NewTraitRegistry()
	for _, tr := range trait.Builtins() {
		if err := reg.Upsert(context.Background(), tr); err != nil {
			t.Fatalf("seeding %s: %v", tr.Key, err)
		}
	}
	return reg
}

func TestRegistryGet(t *testing.T) {
	reg := seedRegistry(t)

	got, err := reg.Get(context.Background(), "eye_color")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Eye Color" {
		t.Errorf("name = %q, want Eye Color", got.Name)
	}

	_, err = reg.Get(context.Background(), "wing_span")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if apperrors.GetCode(err) != apperrors.CodeNotFound {
		t.Errorf("code = %s, want NOT_FOUND", apperrors.GetCode(err))
	}
}

func TestRegistryListOrdersAndFilters(t *testing.T) {
	reg := seedRegistry(t)

	all, err := reg.List(context.Background(), ports.TraitFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d traits, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Errorf("list not ordered by key: %s before %s", all[i-1].Key, all[i].Key)
		}
	}

	eyes, err := reg.List(context.Background(), ports.TraitFilter{Search: "eye"})
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(eyes) != 1 || eyes[0].Key != "eye_color" {
		t.Errorf("search filter returned %v", eyes)
	}
}

func TestRegistryUpsertReplaces(t *testing.T) {
	reg := seedRegistry(t)

	renamed := trait.Trait{Key: "eye_color", Name: "Iris Color", Alleles: []string{"B", "b"}}
	if err := reg.Upsert(context.Background(), renamed); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, _ := reg.Get(context.Background(), "eye_color")
	if got.Name != "Iris Color" {
		t.Errorf("name = %q after upsert", got.Name)
	}

	count, _ := reg.Count(context.Background())
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	if err := reg.Upsert(context.Background(), trait.Trait{}); err == nil {
		t.Error("empty key should be rejected")
	}
}

func TestUsageRepositoryAggregates(t *testing.T) {
	repo := NewUsageRepository()
	ctx := context.Background()

	record := func(op, key string, ms float64) {
		event := models.NewUsageEvent(op)
		event.TraitKey = key
		event.DurationMs = ms
		if err := repo.RecordEvent(ctx, event); err != nil {
			t.Fatalf("RecordEvent failed: %v", err)
		}
	}

	record(models.OperationPreview, "", 1.0)
	record(models.OperationSimulate, "eye_color", 2.0)
	record(models.OperationSimulate, "eye_color", 3.0)
	record(models.OperationSimulate, "hair_color", 4.0)

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals failed: %v", err)
	}
	if totals[models.OperationPreview] != 1 || totals[models.OperationSimulate] != 3 {
		t.Errorf("totals = %v", totals)
	}

	popular, err := repo.PopularTraits(ctx, 10)
	if err != nil {
		t.Fatalf("PopularTraits failed: %v", err)
	}
	if len(popular) != 2 {
		t.Fatalf("got %d ranked traits, want 2", len(popular))
	}
	if popular[0].TraitKey != "eye_color" || popular[0].Count != 2 {
		t.Errorf("top trait = %+v", popular[0])
	}

	durations, err := repo.RecentDurations(ctx, 2)
	if err != nil {
		t.Fatalf("RecentDurations failed: %v", err)
	}
	if len(durations) != 2 || durations[0] != 4.0 || durations[1] != 3.0 {
		t.Errorf("durations = %v, want newest first", durations)
	}

	if repo.Kind() != "memory" {
		t.Errorf("kind = %q", repo.Kind())
	}
}
