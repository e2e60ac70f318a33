package domain

// MenuEntry is one item on the menu with its base price and named options.
// Options carry no price of their own.
type MenuEntry struct {
	Name      string   `toml:"name" yaml:"name"`
	Options   []string `toml:"options" yaml:"options"`
	BasePrice int      `toml:"price" yaml:"price"`
}

// OptionCount returns the number of options the entry offers.
func (e MenuEntry) OptionCount() int {
	return len(e.Options)
}

// OptionNameAt returns the option at the given 1-based index.
// ok is false when index is out of range.
func (e MenuEntry) OptionNameAt(index int) (name string, ok bool) {
	if index < 1 || index > len(e.Options) {
		return "", false
	}
	return e.Options[index-1], true
}

// Catalog is an ordered, read-only list of menu entries.
// Indices are 1-based at the API, matching what users type.
type Catalog struct {
	entries []MenuEntry
}

// NewCatalog creates a Catalog from the given entries.
// The slices are copied so later changes by the caller are not visible.
func NewCatalog(entries ...MenuEntry) Catalog {
	copied := make([]MenuEntry, len(entries))
	for i, e := range entries {
		e.Options = append([]string(nil), e.Options...)
		copied[i] = e
	}
	return Catalog{entries: copied}
}

// Count returns the number of entries.
func (c Catalog) Count() int {
	return len(c.entries)
}

// EntryAt returns the entry at the given 1-based index.
// ok is false when index is out of range.
func (c Catalog) EntryAt(index int) (entry MenuEntry, ok bool) {
	if index < 1 || index > len(c.entries) {
		return MenuEntry{}, false
	}
	return c.entries[index-1], true
}

// Entries returns a copy of all entries in menu order.
func (c Catalog) Entries() []MenuEntry {
	return append([]MenuEntry(nil), c.entries...)
}

// DefaultCatalog returns the fixed menu served by the counter.
func DefaultCatalog() Catalog {
	return NewCatalog(
		MenuEntry{Name: "SAMOSA", BasePrice: 30, Options: []string{"Aloo Samosa", "Chicken Samosa"}},
		MenuEntry{Name: "ROLL", BasePrice: 40, Options: []string{"Chicken Roll", "Beef Roll"}},
		MenuEntry{Name: "CHICKEN BIRYANI", BasePrice: 200, Options: []string{"Chicken", "Beef"}},
		MenuEntry{Name: "PULAO", BasePrice: 200, Options: []string{"Chicken", "Beef"}},
		MenuEntry{Name: "PARATHA", BasePrice: 50, Options: []string{"Plain", "Cheese", "Aloo", "Chicken Cheese"}},
		MenuEntry{Name: "OMELETTE", BasePrice: 50, Options: []string{"Simple", "Cheese"}},
		MenuEntry{Name: "SHAWARMA", BasePrice: 170, Options: []string{"Chicken", "Beef"}},
		MenuEntry{Name: "COLDRINK", BasePrice: 100, Options: []string{"Pakola", "Cola Next", "Pepsi", "7 Up"}},
	)
}
