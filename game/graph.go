package game

import "fmt"

// Cell identifies a grid position.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// A cell links to its up, left and upper-left neighbours, and is linked to by
// the three cells below and to its right.
const maxNeighbors = 6

type adjacency struct {
	ids   [maxNeighbors]int
	count int
}

func (a *adjacency) add(id int) {
	if a.contains(id) {
		return
	}
	a.ids[a.count] = id
	a.count++
}

func (a *adjacency) contains(id int) bool {
	for _, v := range a.ids[:a.count] {
		if v == id {
			return true
		}
	}
	return false
}

// Graph represents the triangulated N×N grid: a fixed edge set and the color
// of every cell. Cells are indexed row*size+col.
type Graph struct {
	size     int
	adjacent []adjacency // Fixed at construction, shared by copies
	colors   []Color     // Color per cell, Empty by default
}

// NewGraph builds the size×size grid with its adjacency.
func NewGraph(size int) (*Graph, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cells := size * size
	g := &Graph{
		size:     size,
		adjacent: make([]adjacency, cells),
		colors:   make([]Color, cells),
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			id := g.index(row, col)
			if row > 0 {
				g.addEdge(id, g.index(row-1, col))
			}
			if col > 0 {
				g.addEdge(id, g.index(row, col-1))
			}
			if row > 0 && col > 0 {
				g.addEdge(id, g.index(row-1, col-1))
			}
		}
	}
	return g, nil
}

// addEdge adds a bidirectional edge between two cells.
func (g *Graph) addEdge(id1, id2 int) {
	g.adjacent[id1].add(id2)
	g.adjacent[id2].add(id1)
}

// Size returns the length of one side of the grid.
func (g *Graph) Size() int {
	return g.size
}

// Cells returns the number of cells, size².
func (g *Graph) Cells() int {
	return len(g.colors)
}

func (g *Graph) ColorOf(row, col int) (Color, error) {
	if err := g.checkBounds(row, col); err != nil {
		return Empty, err
	}
	return g.colors[g.index(row, col)], nil
}

// SetColor overwrites the color of a cell. It performs no legality check.
func (g *Graph) SetColor(row, col int, color Color) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.colors[g.index(row, col)] = color
	return nil
}

// NeighborsOf returns every cell sharing an edge with (row, col), without
// duplicates. The order is stable for a given graph.
func (g *Graph) NeighborsOf(row, col int) ([]Cell, error) {
	if err := g.checkBounds(row, col); err != nil {
		return nil, err
	}
	ids := g.neighbors(g.index(row, col))
	neighbors := make([]Cell, len(ids))
	for i, id := range ids {
		neighbors[i] = g.cell(id)
	}
	return neighbors, nil
}

// Copy returns a graph with the same edges and an independent copy of the colors.
func (g *Graph) Copy() *Graph {
	colorsCopy := make([]Color, len(g.colors))
	copy(colorsCopy, g.colors)

	return &Graph{
		size:     g.size,
		adjacent: g.adjacent, // Never mutated after NewGraph
		colors:   colorsCopy,
	}
}

func (g *Graph) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Graph) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return nil
}

func (g *Graph) index(row, col int) int {
	return row*g.size + col
}

func (g *Graph) cell(id int) Cell {
	return Cell{Row: id / g.size, Col: id % g.size}
}

// neighbors returns a read-only view of the neighbour IDs of a cell.
func (g *Graph) neighbors(id int) []int {
	a := &g.adjacent[id]
	return a.ids[:a.count]
}
