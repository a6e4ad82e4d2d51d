package gocube

// FaceGrid holds the nine visible colors of one face, indexed [row][col]
// as seen from outside the cube.
type FaceGrid [Size][Size]Color

// Uniform reports whether all nine facelets share one color.
func (g FaceGrid) Uniform() bool {
	for row := range g {
		for col := range g[row] {
			if g[row][col] != g[0][0] {
				return false
			}
		}
	}
	return true
}

// projection maps a face grid cell to the cubelet that shows it.
// Back, Left and Top mirror one index so every face reads with the same
// handedness when viewed from outside.
var projections = [6]func(row, col int) (x, y, z int){
	Front:  func(row, col int) (int, int, int) { return col, row, 0 },
	Back:   func(row, col int) (int, int, int) { return 2 - col, row, 2 },
	Left:   func(row, col int) (int, int, int) { return 0, row, 2 - col },
	Right:  func(row, col int) (int, int, int) { return 2, row, col },
	Top:    func(row, col int) (int, int, int) { return col, 0, 2 - row },
	Bottom: func(row, col int) (int, int, int) { return col, 2, row },
}

// FaceColors returns the nine colors visible on face f. Unknown faces
// yield an all-Empty grid.
func (c *Cube) FaceColors(f Face) FaceGrid {
	var grid FaceGrid
	if !f.Valid() {
		for row := range grid {
			for col := range grid[row] {
				grid[row][col] = Empty
			}
		}
		return grid
	}

	project := projections[f]
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			x, y, z := project(row, col)
			grid[row][col] = c.At(x, y, z).Color(f)
		}
	}
	return grid
}
