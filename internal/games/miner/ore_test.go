package miner

import "testing"

func TestOreCatalog(t *testing.T) {
	tests := []struct {
		kind     OreKind
		name     string
		value    int
		rarity   float64
		minDepth int
	}{
		{OreCopper, "Copper", 1, 0.15, 5},
		{OreIron, "Iron", 3, 0.08, 10},
		{OreGold, "Gold", 8, 0.03, 15},
		{OreDiamond, "Diamond", 20, 0.008, 25},
	}

	for _, tt := range tests {
		p := tt.kind.Properties()
		if p.Name != tt.name {
			t.Errorf("%v name = %q, want %q", tt.kind, p.Name, tt.name)
		}
		if p.Value != tt.value {
			t.Errorf("%s value = %d, want %d", tt.name, p.Value, tt.value)
		}
		if p.Rarity != tt.rarity {
			t.Errorf("%s rarity = %f, want %f", tt.name, p.Rarity, tt.rarity)
		}
		if p.MinDepth != tt.minDepth {
			t.Errorf("%s minDepth = %d, want %d", tt.name, p.MinDepth, tt.minDepth)
		}
	}
}

func TestAllOreKindsAscendingValue(t *testing.T) {
	kinds := AllOreKinds()
	if len(kinds) != NumOreKinds {
		t.Fatalf("AllOreKinds returned %d kinds, want %d", len(kinds), NumOreKinds)
	}
	for i := 1; i < len(kinds); i++ {
		prev := kinds[i-1].Properties().Value
		cur := kinds[i].Properties().Value
		if cur <= prev {
			t.Errorf("kinds not in ascending value order: %v (%d) before %v (%d)",
				kinds[i-1], prev, kinds[i], cur)
		}
	}
}

func TestInvalidOreKind(t *testing.T) {
	bad := OreKind(-1)
	if bad.Valid() {
		t.Error("OreKind(-1) should not be valid")
	}
	if bad.String() != "Unknown" {
		t.Errorf("OreKind(-1).String() = %q, want Unknown", bad.String())
	}
	if p := bad.Properties(); p != (OreProperties{}) {
		t.Errorf("OreKind(-1).Properties() = %+v, want zero", p)
	}

	past := OreKind(NumOreKinds)
	if past.Valid() {
		t.Error("OreKind past the catalog should not be valid")
	}
}
