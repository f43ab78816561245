package game

import "math"

// Cell is a broadphase bucket of vessel indices
type Cell struct {
	// Entries in this cell (storage is reused between rebuilds)
	Entries []int

	// Current count of active entries
	Count int
}

// NewCell creates a new cell with preallocated storage
func NewCell(initialCapacity int) *Cell {
	return &Cell{
		Entries: make([]int, 0, initialCapacity),
	}
}

// Add appends an entry to this cell
func (c *Cell) Add(index int) {
	if c.Count < len(c.Entries) {
		c.Entries[c.Count] = index
	} else {
		c.Entries = append(c.Entries, index)
	}
	c.Count++
}

// Items returns the active entries in this cell
func (c *Cell) Items() []int {
	return c.Entries[:c.Count]
}

// Clear empties the cell but keeps capacity
func (c *Cell) Clear() {
	c.Count = 0
}

type cellKey struct {
	X, Y int
}

// Grid is an unbounded uniform spatial hash over vessel positions.
// Vessels are stored in the cell holding their centre; queries widen by the
// largest radius inserted so no overlapping pair is missed.
type Grid struct {
	CellSize  float64
	cells     map[cellKey]*Cell
	maxRadius float64
}

// NewGrid creates an empty grid
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultConfig().CellSize
	}
	return &Grid{
		CellSize: cellSize,
		cells:    make(map[cellKey]*Cell),
	}
}

// key maps world coordinates onto a cell
func (g *Grid) key(p Vec2) cellKey {
	return cellKey{
		X: int(math.Floor(p.X() / g.CellSize)),
		Y: int(math.Floor(p.Y() / g.CellSize)),
	}
}

// Reset clears every cell, dropping cells left empty since the previous reset
func (g *Grid) Reset() {
	for k, c := range g.cells {
		if c.Count == 0 {
			delete(g.cells, k)
			continue
		}
		c.Clear()
	}
	g.maxRadius = 0
}

// Rebuild indexes every vessel in the slice
func (g *Grid) Rebuild(vessels []Vessel) {
	g.Reset()
	for i := range vessels {
		g.Insert(i, vessels[i].Position, vessels[i].Radius)
	}
}

// Insert adds an index at position
func (g *Grid) Insert(index int, position Vec2, radius float64) {
	k := g.key(position)
	c, ok := g.cells[k]
	if !ok {
		c = NewCell(8)
		g.cells[k] = c
	}
	c.Add(index)
	g.maxRadius = max(g.maxRadius, radius)
}

// Near calls fn for every index whose body could overlap a circle at position with radius
func (g *Grid) Near(position Vec2, radius float64, fn func(index int)) {
	reach := radius + g.maxRadius
	lo := g.key(position.Sub(Vec2{reach, reach}))
	hi := g.key(position.Add(Vec2{reach, reach}))

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			c, ok := g.cells[cellKey{x, y}]
			if !ok {
				continue
			}
			for _, i := range c.Items() {
				fn(i)
			}
		}
	}
}
