// Package grid holds dense N-dimensional grids and the boolean masks derived
// from them, and extracts the "on" cells of a mask as coordinate vectors.
//
//	g, _ := grid.FromRows([][]int{{0, 1}, {1, 0}})
//	m := g.Mask(func(v int) bool { return v > 0 })
//	pts := m.Points(rand.New(rand.NewSource(1)))
package grid
