package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

	alive, neighbors < 2       -> dead  (underpopulation)
	alive, neighbors == 2 or 3 -> alive (survival)
	alive, neighbors > 3       -> dead  (overpopulation)
	dead,  neighbors == 3      -> alive (reproduction)
	dead,  otherwise           -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive:
		return false
	case neighbors == 3:
		return true
	default:
		return false
	}
}
