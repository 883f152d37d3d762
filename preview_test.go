package logofix_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"github.com/kevin-cantwell/logofix"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

var _ = Describe("Braille", func() {
	It("is blank with no dots raised", func() {
		Expect(logofix.Braille{}.Rune()).To(Equal('⠀'))
	})

	It("is full with every dot raised", func() {
		b := logofix.Braille{{true, true, true, true}, {true, true, true, true}}
		Expect(b.String()).To(Equal("⣿"))
	})

	It("numbers dots down the left column first", func() {
		var b logofix.Braille
		b[0][0] = true
		Expect(b.Rune()).To(Equal('⠁'))

		b = logofix.Braille{}
		b[1][0] = true
		Expect(b.Rune()).To(Equal('⠈'))

		b = logofix.Braille{}
		b[0][3] = true
		Expect(b.Rune()).To(Equal('⡀'))

		b = logofix.Braille{}
		b[1][3] = true
		Expect(b.Rune()).To(Equal('⢀'))
	})
})

var _ = Describe("Preview", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	previewLines := func() []string {
		return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	}

	It("raises every dot for black", func() {
		Expect(logofix.Preview(out, solid(4, 8, color.Black), 80, 25)).To(Succeed())

		Expect(previewLines()).To(Equal([]string{"⣿⣿", "⣿⣿"}))
	})

	It("leaves white and transparent pixels blank", func() {
		Expect(logofix.Preview(out, solid(4, 4, color.White), 80, 25)).To(Succeed())
		Expect(out.String()).To(Equal("⠀⠀\n"))

		out.Reset()
		Expect(logofix.Preview(out, solid(4, 4, color.Transparent), 80, 25)).To(Succeed())
		Expect(out.String()).To(Equal("⠀⠀\n"))
	})

	It("shrinks large images to fit", func() {
		Expect(logofix.Preview(out, solid(100, 100, color.Black), 5, 5)).To(Succeed())

		got := previewLines()
		Expect(len(got)).To(BeNumerically("<=", 5))
		for _, line := range got {
			Expect(utf8.RuneCountInString(line)).To(BeNumerically("<=", 5))
		}
	})

	It("draws nothing without room", func() {
		Expect(logofix.Preview(out, solid(4, 4, color.Black), 0, 10)).To(Succeed())
		Expect(out.String()).To(BeEmpty())
	})
})
