package components

const (
	ColumnContentWidth = 34 // inside the column border and padding
	CardContentWidth   = 30 // inside the card border
	CardHeight         = 4  // border(2) + title + preview
	cardTitleMaxLength = 28 // title length before truncation
	columnOverhead     = 5  // border(2) + header + top and bottom indicators
)

// VisibleCards returns how many cards fit in a column of the given height.
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}
