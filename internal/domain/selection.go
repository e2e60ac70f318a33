package domain

// Selection is what the customer picked in one round.
// Fields are ordered to minimize memory padding.
type Selection struct {
	OptionName  string
	Entry       MenuEntry
	OptionIndex int // 1-based
	Quantity    int
}

// Round is a completed order line together with its price.
type Round struct {
	Selection Selection
	Price     PriceBreakdown
	Number    int // 1-based position within the session
}
