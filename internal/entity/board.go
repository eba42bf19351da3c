package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// WinCombos - the 8 fixed triples that decide a game, checked in this order.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 9-cell grid. A cell holds PlayerX, PlayerO or EmptyCell;
// once set, a cell is never written again.
type Board [9]string

func NewBoard() Board {
	return Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

// Set - assigns a symbol to a cell. The caller guarantees the index is in
// range and the cell is empty; the lobby enforces both before calling.
func (that *Board) Set(cell int, symbol string) {
	that[cell] = symbol
}

// Winner - returns the symbol occupying all three cells of the first
// matching combo, or EmptyCell when nobody has won yet.
func (that *Board) Winner() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsFull - reports whether no cell is empty.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// ToggleMark - returns the opposing symbol.
func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
