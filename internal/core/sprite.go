package core

// Sprite is a small block of glyphs drawn as one unit. It plays the role of a
// texture for the terminal renderer; animations compare sprites by pointer.
type Sprite struct {
	Rows  []string
	Color Color
}

// Size returns the sprite's width and height in cells.
func (s *Sprite) Size() (int, int) {
	if s == nil {
		return 0, 0
	}
	w := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(s.Rows)
}
