package core

// Point is an absolute cell coordinate on the playfield
type Point struct {
	X, Y int
}

// Playfield is the fixed session area entities move in
type Playfield struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (p Playfield) Contains(pt Point) bool {
	return pt.X >= 0 && pt.X < p.Width && pt.Y >= 0 && pt.Y < p.Height
}
