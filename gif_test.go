package contribgif_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/contribgif"
)

func solid(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

var _ = Describe("AdaptivePalette", func() {
	It("orders colors by how often they appear", func() {
		img := solid(contribgif.Background, 10, 10)
		img.SetRGBA(0, 0, contribgif.AlienGreen)
		img.SetRGBA(1, 0, contribgif.AlienGreen)
		img.SetRGBA(2, 0, contribgif.ShirtColor)

		p := contribgif.AdaptivePalette(img, 256)
		Expect(p).To(HaveLen(3))
		Expect(p[0]).To(Equal(contribgif.Background))
		Expect(p[1]).To(Equal(contribgif.AlienGreen))
		Expect(p[2]).To(Equal(contribgif.ShirtColor))
	})

	It("caps the palette size", func() {
		img := image.NewRGBA(image.Rect(0, 0, 40, 40))
		for i := 0; i < 40*40; i++ {
			img.SetRGBA(i%40, i/40, color.RGBA{uint8(i), uint8(i >> 8), 0, 0xff})
		}
		Expect(contribgif.AdaptivePalette(img, 16)).To(HaveLen(16))
	})

	It("spends spare slots on the colors it could not pin", func() {
		img := solid(contribgif.Background, 60, 60)
		for i := 0; i < 300; i++ {
			img.SetRGBA(i%60, i/60, color.RGBA{uint8(180 + i%20), uint8(i / 20), 0x20, 0xff})
			img.SetRGBA(i%60, 30+i/60, color.RGBA{0x20, uint8(i / 20), uint8(180 + i%20), 0xff})
		}

		p := contribgif.AdaptivePalette(img, 16)
		Expect(len(p)).To(BeNumerically("<=", 16))
		Expect(p).To(ContainElement(contribgif.Background))
		for y := 0; y < 60; y++ {
			for x := 0; x < 60; x++ {
				want := img.RGBAAt(x, y)
				got := color.RGBAModel.Convert(p.Convert(want)).(color.RGBA)
				Expect(channelDist(got, want)).To(BeNumerically("<=", 40), "pixel %d,%d", x, y)
			}
		}
	})

	It("keeps the grid exact under a glow halo", func() {
		cal := yearOf(53, 7)
		for w := range cal {
			for d := range cal[w] {
				cal[w][d].Count = (w + d) % 14
			}
		}
		grid := contribgif.NewGridRenderer()
		base := grid.Render(cal)
		policy, err := contribgif.ParsePolicy("walk")
		Expect(err).NotTo(HaveOccurred())
		frames := contribgif.NewAnimator(policy, grid.Layout(), contribgif.WithFrames(10), contribgif.WithGlow(3)).
			Animate(base, cal.Cols())

		giff := contribgif.NewGIFEncoder().GIF(frames[5:6])
		Expect(len(giff.Image[0].Palette)).To(BeNumerically("<=", 256))
		pose := contribgif.NewAnimator(policy, grid.Layout(), contribgif.WithFrames(10)).Poses(cal.Cols())[5]
		for w := range cal {
			if w >= pose.Col-2 && w <= pose.Col+2 {
				continue
			}
			for d := range cal[w] {
				c := grid.Layout().CellCenter(w, d)
				Expect(color.RGBAModel.Convert(giff.Image[0].At(c.X, c.Y))).To(Equal(rgbaAt(frames[5], c)))
			}
		}
	})
})

func channelDist(a, b color.RGBA) int {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(int(a.R)-int(b.R)) + abs(int(a.G)-int(b.G)) + abs(int(a.B)-int(b.B))
}

var _ = Describe("GIFEncoder", func() {
	var frames []*image.RGBA

	BeforeEach(func() {
		frames = []*image.RGBA{
			solid(contribgif.PurplePalette[0], 6, 4),
			solid(contribgif.PurplePalette[2], 6, 4),
			solid(contribgif.PurplePalette[4], 6, 4),
		}
	})

	It("encodes a looping animation in frame order", func() {
		var buf bytes.Buffer
		Expect(contribgif.NewGIFEncoder().Encode(&buf, frames)).To(Succeed())

		decoded, err := gif.DecodeAll(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Image).To(HaveLen(3))
		Expect(decoded.LoopCount).To(Equal(0))
		Expect(decoded.Delay).To(Equal([]int{14, 14, 14}))
		for i, img := range decoded.Image {
			Expect(img.Bounds()).To(Equal(frames[i].Bounds()))
			Expect(color.RGBAModel.Convert(img.At(2, 2))).To(Equal(frames[i].RGBAAt(2, 2)))
		}
	})

	It("honors the frame delay", func() {
		giff := contribgif.NewGIFEncoder(contribgif.WithDelay(250 * time.Millisecond)).GIF(frames)
		Expect(giff.Delay).To(Equal([]int{25, 25, 25}))
	})

	It("keeps flat colors exact", func() {
		img := solid(contribgif.Background, 20, 20)
		draw.Draw(img, image.Rect(5, 5, 15, 15), image.NewUniform(contribgif.PurplePalette[3]), image.Point{}, draw.Src)
		for _, enc := range []*contribgif.GIFEncoder{contribgif.NewGIFEncoder(), contribgif.NewGIFEncoder(contribgif.WithDither())} {
			giff := enc.GIF([]*image.RGBA{img})
			Expect(color.RGBAModel.Convert(giff.Image[0].At(10, 10))).To(Equal(contribgif.PurplePalette[3]))
			Expect(color.RGBAModel.Convert(giff.Image[0].At(0, 0))).To(Equal(contribgif.Background))
		}
	})
})

var _ = Describe("WriteGIF", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "contribgif")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("creates the directory and writes the file", func() {
		path := filepath.Join(dir, "assets", "nested", "out.gif")
		n, err := contribgif.WriteGIF(path, contribgif.NewGIFEncoder(), []*image.RGBA{solid(contribgif.Background, 3, 3)})
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeEquivalentTo(n))
	})

	It("replaces an existing file", func() {
		path := filepath.Join(dir, "out.gif")
		Expect(os.WriteFile(path, []byte("stale"), 0644)).To(Succeed())
		n, err := contribgif.WriteGIF(path, contribgif.NewGIFEncoder(), []*image.RGBA{solid(contribgif.Background, 3, 3)})
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveLen(n))
		Expect(string(data[:6])).To(Equal("GIF89a"))
	})

	It("leaves no partial file behind when the write fails", func() {
		path := filepath.Join(dir, "taken")
		Expect(os.MkdirAll(filepath.Join(path, "child"), 0755)).To(Succeed())

		_, err := contribgif.WriteGIF(path, contribgif.NewGIFEncoder(), []*image.RGBA{solid(contribgif.Background, 3, 3)})
		Expect(err).To(HaveOccurred())

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("taken"))
		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("writes nothing when there are no frames", func() {
		path := filepath.Join(dir, "empty.gif")
		_, err := contribgif.WriteGIF(path, contribgif.NewGIFEncoder(), nil)
		Expect(err).To(HaveOccurred())
		_, err = os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
