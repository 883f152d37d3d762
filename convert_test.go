package logofix_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/kevin-cantwell/logofix"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("names the problem for empty input", func() {
		_, err := logofix.Decode(bytes.NewReader(nil))

		Expect(err).To(MatchError("decode image: image: unknown format"))
	})

	It("passes through open errors", func() {
		_, err := logofix.DecodeFile(filepath.Join(os.TempDir(), "logofix-does-not-exist.png"))

		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})

var _ = Describe("ToNRGBA", func() {
	It("expands palette images", func() {
		got := logofix.ToNRGBA(stripes())

		Expect(got.Bounds()).To(Equal(image.Rect(0, 0, 4, 3)))
		Expect(got.NRGBAAt(0, 0)).To(Equal(red))
		Expect(got.NRGBAAt(1, 0)).To(Equal(blue))
	})

	It("expands gray images", func() {
		gray := image.NewGray(image.Rect(0, 0, 2, 1))
		gray.SetGray(0, 0, color.Gray{Y: 0x40})
		gray.SetGray(1, 0, color.Gray{Y: 0xc0})

		got := logofix.ToNRGBA(gray)

		Expect(got.Pix).To(Equal([]uint8{0x40, 0x40, 0x40, 0xff, 0xc0, 0xc0, 0xc0, 0xff}))
	})

	It("keeps palette transparency", func() {
		seeThrough := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0}
		img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{seeThrough})

		got := logofix.ToNRGBA(img)

		Expect(got.NRGBAAt(0, 0).A).To(Equal(uint8(0)))
	})

	It("moves the origin to zero", func() {
		img := image.NewNRGBA(image.Rect(3, 4, 5, 6))
		img.SetNRGBA(3, 4, red)

		got := logofix.ToNRGBA(img)

		Expect(got.Bounds()).To(Equal(image.Rect(0, 0, 2, 2)))
		Expect(got.NRGBAAt(0, 0)).To(Equal(red))
	})
})
