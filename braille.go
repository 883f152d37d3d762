package logofix

import (
	"bufio"
	"image"
	"image/color"
	"io"
)

// Braille represents an 8 dot braille cell in x,y coordinates space. Eg:
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type Braille [2][4]bool

// Rune maps each raised dot to its braille bit and returns the symbol.
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
//
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
func (b Braille) Rune() rune {
	order := [8]bool{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v rune
	for i, raised := range order {
		if raised {
			v |= 1 << uint(i)
		}
	}
	return '\u2800' + v
}

func (b Braille) String() string {
	return string(b.Rune())
}

// writeBraille emits one braille rune per 2x4 block of img and a newline
// after every 4 pixel rows. Only pixels equal to color.Black raise a dot.
func writeBraille(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	// Bounds don't necessarily start at (0, 0). Rows first for nicer memory access.
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b Braille
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					// Blocks hanging over the right or bottom edge stay empty.
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					b[x][y] = img.At(px+x, py+y) == color.Black
				}
			}
			if _, err := bw.WriteRune(b.Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
