package game

// ScoreFor returns the number of islands of the given color.
func (b *Board) ScoreFor(color Color) int {
	score := 0
	b.graph.eachIsland(color, func([]int) {
		score++
	})
	return score
}

func (b *Board) WhiteScore() int {
	return b.ScoreFor(White)
}

func (b *Board) BlackScore() int {
	return b.ScoreFor(Black)
}

// Islands returns every island of the given color, ordered by the row-major
// position of its first cell. Cells within an island are in BFS order.
func (b *Board) Islands(color Color) [][]Cell {
	var islands [][]Cell
	b.graph.eachIsland(color, func(ids []int) {
		island := make([]Cell, len(ids))
		for i, id := range ids {
			island[i] = b.graph.cell(id)
		}
		islands = append(islands, island)
	})
	return islands
}

// eachIsland scans cells in row-major order. Every unseen cell of the color
// seeds a new island, which is consumed by BFS before the scan moves on.
func (g *Graph) eachIsland(color Color, fn func(ids []int)) {
	if !color.IsPlayer() {
		return
	}

	// Cells are marked when queued, so no cell is queued twice
	counted := make([]bool, len(g.colors))

	for seed, c := range g.colors {
		if counted[seed] || c != color {
			continue
		}

		counted[seed] = true
		island := []int{}
		queue := []int{seed}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			island = append(island, current)

			for _, adjID := range g.neighbors(current) {
				if counted[adjID] || g.colors[adjID] != color {
					continue
				}
				counted[adjID] = true
				queue = append(queue, adjID)
			}
		}
		fn(island)
	}
}

// HeuristicScoreFor counts islands with a single row-major pass: a cell starts
// a new island unless a neighbour of the same color was already scanned, and
// CheckDoubleCount removes the point when two scanned islands meet at a cell
// from above and from the left.
//
// This undercounts islands that close a ring around a foreign cell, since the
// correction also fires when the two arms were already joined. ScoreFor is
// exact; this is kept to compare against it.
func (b *Board) HeuristicScoreFor(color Color) int {
	if !color.IsPlayer() {
		return 0
	}

	g := b.graph
	scanned := make([]bool, len(g.colors))
	score := 0
	for id, c := range g.colors {
		if c != color {
			continue
		}

		inIsland := false
		for _, adjID := range g.neighbors(id) {
			if scanned[adjID] {
				inIsland = true
				break
			}
		}
		if !inIsland {
			score++
		}
		scanned[id] = true

		cell := g.cell(id)
		score += b.CheckDoubleCount(cell.Row, cell.Col, color)
	}
	return score
}

// CheckDoubleCount returns -1 when the cells above and to the left of
// (row, col) have the color but the upper-left diagonal does not, and 0
// otherwise. Cells on the top row, the left column or outside the board
// always return 0.
func (b *Board) CheckDoubleCount(row, col int, color Color) int {
	g := b.graph
	if row <= 0 || col <= 0 || !g.inBounds(row, col) {
		return 0
	}

	up := g.colors[g.index(row-1, col)]
	left := g.colors[g.index(row, col-1)]
	diag := g.colors[g.index(row-1, col-1)]
	if up == color && left == color && diag != color {
		return -1
	}
	return 0
}
