package handranks

// Table is a finished transition table of rowWidth-wide rows. Row 0
// is reserved; the hand in registry slot i owns the row starting at
// rows[(i+1)*rowWidth]. rows[(i+1)*rowWidth+card] holds the start
// offset of the row for that hand plus card (or, once the seventh
// card is folded in, the terminal rank code), and column 0 of a 5- or
// 6-card hand's row holds that hand's rank code. A walk starts at
// offset rowWidth, the empty hand's row.
type Table struct {
	deckSize int
	rowWidth uint32
	rows     []uint32
}

// DeckSize returns the number of cards (52 or 56) t was built for.
func (t *Table) DeckSize() int {
	return t.deckSize
}

// Lookup walks cards through t, returning the terminal rank code.
// cards must be 5 to 7 card indices in [1, t.DeckSize()]; for
// a joker deck, jokers may appear among them and are walked like any
// other card (the joker table's terminal rows already account for
// them). Lookup does not validate its input -- a caller that walks
// fewer than five cards, or repeats one, gets a meaningless code back,
// not an error.
func (t *Table) Lookup(cards []Card) uint32 {
	p := t.rowWidth
	for _, c := range cards {
		p = t.rows[p+uint32(c)]
	}
	if n := len(cards); n == 5 || n == 6 {
		p = t.rows[p]
	}
	return p
}
