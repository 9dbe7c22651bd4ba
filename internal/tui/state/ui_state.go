package state

import "github.com/thenoetrevino/grid/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode               Mode = iota // Default navigation mode
	CreateProjectMode                    // Typing a new project name
	AddColumnMode                        // Typing a new column name
	CardFormMode                         // Filling in the add-card form
	RenameProjectMode                    // Renaming the current project
	DeleteProjectConfirmMode             // Confirming project removal
	DeleteColumnConfirmMode              // Confirming column removal
	DeleteCardConfirmMode                // Confirming card removal
	CardDetailMode                       // Read-only card detail modal
	HelpMode                             // Displaying help screen
)

// String returns a short name for the mode, shown in the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case CreateProjectMode:
		return "new project"
	case AddColumnMode:
		return "new column"
	case CardFormMode:
		return "new card"
	case RenameProjectMode:
		return "rename"
	case DeleteProjectConfirmMode, DeleteColumnConfirmMode, DeleteCardConfirmMode:
		return "confirm"
	case CardDetailMode:
		return "card"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// IsConfirm reports whether the mode is one of the y/n confirmations
func (m Mode) IsConfirm() bool {
	return m == DeleteProjectConfirmMode || m == DeleteColumnConfirmMode || m == DeleteCardConfirmMode
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedCard   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the index of the first visible card per column
	cardScrollOffsets map[types.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		cardScrollOffsets: make(map[types.ColumnID]int),
	}
}

// SelectedColumn returns the index of the selected column within the current project.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(index, 0)
}

// SelectedCard returns the index of the selected card within the selected column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(index, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the tab bar and
// status bar are drawn, never less than 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3
	const statusBarHeight = 2
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(offset, 0)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// ColumnWidth is the horizontal space one column takes:
// 34 content + 2 padding + 2 border + 2 spacing.
const ColumnWidth = 40

// calculateViewportSize works out how many columns fit in the terminal
// width, keeping 4 characters for margins and scroll indicators.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const reservedWidth = 4
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// ClampSelection keeps the column selection inside [0, columnsLen) and the
// viewport within bounds. Called after every dispatch since a removal can
// shrink the lists underneath the cursor.
func (s *UIState) ClampSelection(columnsLen int) {
	if columnsLen == 0 {
		s.selectedColumn = 0
		s.selectedCard = 0
		s.viewportOffset = 0
		return
	}
	if s.selectedColumn >= columnsLen {
		s.selectedColumn = columnsLen - 1
		s.selectedCard = 0
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// ClampCard keeps the card selection inside [0, cardsLen).
func (s *UIState) ClampCard(cardsLen int) {
	if s.selectedCard >= cardsLen {
		s.selectedCard = max(cardsLen-1, 0)
	}
}

// ScrollViewportLeft scrolls the viewport one column to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one column to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
func (s *UIState) ScrollViewportRight(columnsLen int) bool {
	if s.viewportOffset+s.viewportSize < columnsLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection resets column and card selection and the viewport.
// Called when switching projects.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
	s.viewportOffset = 0
}

// CardScrollOffset returns the index of the first visible card in a column.
func (s *UIState) CardScrollOffset(columnID types.ColumnID) int {
	return s.cardScrollOffsets[columnID]
}

// EnsureCardVisible adjusts a column's scroll offset so the selected card is visible.
func (s *UIState) EnsureCardVisible(columnID types.ColumnID, selected int, visibleCount int) {
	offset := s.cardScrollOffsets[columnID]

	if selected < offset {
		offset = selected
	}
	if selected >= offset+visibleCount {
		offset = selected - visibleCount + 1
	}
	s.cardScrollOffsets[columnID] = max(offset, 0)
}
