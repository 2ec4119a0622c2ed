package finview

import "fmt"

// Header is the sentinel index for header cells. Coord{Row: r, Col: Header}
// addresses row r's indicator name; Coord{Row: Header, Col: c} addresses
// column c's year. Data cells use non-negative indices on both axes.
const Header = -1

// Coord addresses one grid position: Row is the indicator's position in the
// header sequence, Col is the year's position in the ascending selected-years
// sequence. Coordinates are pure data positions, independent of how the grid
// is drawn.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// InGrid reports whether c addresses a data cell of a rows×cols grid.
// Header sentinels are not data cells.
func (c Coord) InGrid(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Modifier qualifies a selection gesture.
type Modifier int

const (
	// ModNone is a plain click: it replaces the whole selection.
	ModNone Modifier = iota
	// ModToggle (ctrl-click) flips one target without clearing the rest.
	ModToggle
	// ModRange (shift-click) spans from the anchor to the target.
	ModRange
)

func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "none"
	case ModToggle:
		return "toggle"
	case ModRange:
		return "range"
	default:
		return "unknown"
	}
}

// AnchorKind tells what the last non-modifier interaction selected.
type AnchorKind int

const (
	// AnchorNone means no anchor: the initial state, and the state after Clear.
	AnchorNone AnchorKind = iota
	// AnchorCell anchors range selection to a data cell.
	AnchorCell
	// AnchorColumn anchors range selection to a column header.
	AnchorColumn
	// AnchorRow anchors range selection to a row header.
	AnchorRow
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorCell:
		return "cell"
	case AnchorColumn:
		return "column"
	case AnchorRow:
		return "row"
	default:
		return "none"
	}
}

// Anchor is the reference point for range selection: the coordinate of the
// most recent non-modifier interaction, tagged with what it selected. Range
// gestures only combine with an anchor of their own kind.
type Anchor struct {
	Kind AnchorKind
	At   Coord
}
