package handranks

import "testing"

// TestTableLookupWalk builds a minimal synthetic table by hand (a
// single-card "deck", one row per card folded in) to verify the row
// arithmetic independent of the real builder.
func TestTableLookupWalk(t *testing.T) {
	const rowWidth = 2 // deckSize 1 + 1
	// slot i's row base is (i+1)*rowWidth, matching the builder's own
	// "slot*rowWidth + rowWidth" convention; chain slot0 -> slot1 ->
	// ... -> slot5 by repeatedly folding in "card 1".
	rows := make([]uint32, (6+1)*rowWidth)
	base := func(slot uint32) uint32 { return (slot + 1) * rowWidth }
	for i := uint32(0); i < 5; i++ {
		rows[base(i)+1] = base(i + 1)
	}
	rows[base(5)] = 99 // slot5's own ("diagnostic") rank code, in column 0

	tbl := &Table{deckSize: 1, rowWidth: rowWidth, rows: rows}

	four := []Card{1, 1, 1, 1}
	if got := tbl.Lookup(four); got != base(4) {
		t.Errorf("Lookup with 4 cards = %d, want %d (no diagnostic read at n=4)", got, base(4))
	}
	five := []Card{1, 1, 1, 1, 1}
	if got := tbl.Lookup(five); got != 99 {
		t.Errorf("Lookup with 5 cards = %d, want 99 (diagnostic read fires at n=5)", got)
	}
}

func TestTableDeckSize(t *testing.T) {
	tbl := &Table{deckSize: 56, rowWidth: 57, rows: nil}
	if tbl.DeckSize() != 56 {
		t.Errorf("DeckSize() = %d, want 56", tbl.DeckSize())
	}
}
