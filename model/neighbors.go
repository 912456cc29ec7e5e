package model

// neighborOffsets lists each of the eight (dRow, dCol) offsets exactly once
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors returns the number of living cells adjacent to (row, col).
// Edges are clipped: candidates outside the grid are skipped, never wrapped.
func CountNeighbors(g *Grid, row, col int) int {
	if !g.InBounds(row, col) {
		panic("model: CountNeighbors called outside the grid")
	}

	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if g.InBounds(r, c) && g.cells[g.index(r, c)] {
			count++
		}
	}
	return count
}

// CountNeighbors counts living neighbors of (row, col)
func (g *Grid) CountNeighbors(row, col int) int {
	return CountNeighbors(g, row, col)
}
