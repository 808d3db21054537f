package contribgif

// cellDots is one 2x4 braille cell in x,y order:
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type cellDots [2][4]bool

// brailleBits gives the unicode dot number (bit) of each position.
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying,_naming_and_ordering
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Rune is the braille symbol with the set dots raised.
func (d cellDots) Rune() rune {
	var v rune
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			if d[x][y] {
				v |= 1 << brailleBits[x][y]
			}
		}
	}
	return '\u2800' + v
}
