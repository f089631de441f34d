package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func checkerboard(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func bitmapOf(rows ...string) *Bitmap {
	b := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			b.Set(x, y, c == '1')
		}
	}
	return b
}

func assertRows(t *testing.T, b *Bitmap, rows ...string) {
	t.Helper()
	if b.Width() != len(rows[0]) || b.Height() != len(rows) {
		t.Fatalf("got %s, want %dx%d", b, len(rows[0]), len(rows))
	}
	for y, row := range rows {
		for x, c := range row {
			if b.Ink(x, y) != (c == '1') {
				t.Errorf("dot (%d, %d) = %v, want %c", x, y, b.Ink(x, y), c)
			}
		}
	}
}

func TestBinarizeOnlyPureBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 0xFF})
	img.Set(1, 0, color.NRGBA{1, 1, 1, 0xFF})
	img.Set(2, 0, color.NRGBA{0, 0, 0, 0})
	img.Set(3, 0, color.White)

	assertRows(t, Binarize(img), "1000")
}

func TestBinarizeSubImage(t *testing.T) {
	img := checkerboard(6, 6).SubImage(image.Rect(1, 1, 4, 2))
	// (1,1) is black on the board, (2,1) white, (3,1) black
	assertRows(t, Binarize(img), "101")
}

func TestPackMSBFirst(t *testing.T) {
	r, err := Pack(bitmapOf("10101010"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.BytesPerLine != 1 || !bytes.Equal(r.Data, []byte{0xAA}) {
		t.Errorf("got %s % x, want 1 byte/line aa", r, r.Data)
	}
}

func TestPackPadding(t *testing.T) {
	r, err := Pack(bitmapOf("1111111111", "0000000001"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.BytesPerLine != 2 || r.Height != 2 {
		t.Fatalf("got %s", r)
	}
	if !bytes.Equal(r.Row(0), []byte{0xFF, 0xC0}) || !bytes.Equal(r.Row(1), []byte{0x00, 0x40}) {
		t.Errorf("data = % x", r.Data)
	}
}

func TestPackBytesPerLine(t *testing.T) {
	for w := 1; w <= 33; w++ {
		r, err := Pack(NewBitmap(w, 3), 1)
		if err != nil {
			t.Fatal(err)
		}
		if want := (w + 7) / 8; r.BytesPerLine != want || len(r.Data) != want*3 {
			t.Errorf("width %d: %s with %d bytes", w, r, len(r.Data))
		}
	}
}

func TestPackDarkness(t *testing.T) {
	tests := []struct {
		darkness float64
		want     byte
	}{
		{1, 0xAA}, {0.5, 0x55}, {2, 0xFF}, {0, 0}, {-1, 0},
	}
	for _, tt := range tests {
		r, err := Pack(bitmapOf("10101010"), tt.darkness)
		if err != nil {
			t.Fatal(err)
		}
		if r.Data[0] != tt.want {
			t.Errorf("darkness %v: got %#x, want %#x", tt.darkness, r.Data[0], tt.want)
		}
	}
}

func TestPackRejectsEmpty(t *testing.T) {
	for _, b := range []*Bitmap{NewBitmap(0, 5), NewBitmap(5, 0)} {
		if _, err := Pack(b, 1); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Pack(%s) err = %v", b, err)
		}
	}
	if _, err := Pack(NewBitmap(1, MaxField+1), 1); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("tall raster err = %v", err)
	}
}

func TestScaleNearest(t *testing.T) {
	got, err := Scale(bitmapOf("10"), 2, false)
	if err != nil {
		t.Fatal(err)
	}
	assertRows(t, got, "1100", "1100")
}

func TestScaleSmoothSolid(t *testing.T) {
	black, err := Scale(Binarize(solid(3, 3, color.Black)), 2, true)
	if err != nil {
		t.Fatal(err)
	}
	assertRows(t, black, "111111", "111111", "111111", "111111", "111111", "111111")

	white, err := Scale(Binarize(solid(3, 2, color.White)), 2, true)
	if err != nil {
		t.Fatal(err)
	}
	assertRows(t, white, "000000", "000000", "000000", "000000")
}

func TestScaleSmoothEdges(t *testing.T) {
	tests := []struct {
		name string
		src  []string
		want []string
	}{
		{"diagonal", []string{"10", "01"}, []string{"1100", "1100", "0011", "0011"}},
		{"bar", []string{"0110"}, []string{"00111100", "00111100"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(bitmapOf(tt.src...), 2, true)
			if err != nil {
				t.Fatal(err)
			}
			assertRows(t, got, tt.want...)
		})
	}
}

func TestScaleTruncates(t *testing.T) {
	got, err := Scale(bitmapOf("111"), 1.5, false)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 4 || got.Height() != 1 {
		t.Errorf("3x1 scaled by 1.5 = %s, want 4x1", got)
	}
}

func TestScaleRejectsOversize(t *testing.T) {
	tests := []struct {
		src    *Bitmap
		factor float64
	}{
		{NewBitmap(1, 1), 1e10},
		{NewBitmap(1, 1), 1e300},
		{NewBitmap(1, 2), 40000},
		{NewBitmap(2, 1), 262200},
	}
	for _, tt := range tests {
		for _, smooth := range []bool{false, true} {
			if _, err := Scale(tt.src, tt.factor, smooth); !errors.Is(err, ErrInvalidImage) {
				t.Errorf("Scale(%s, %v, %v) err = %v", tt.src, tt.factor, smooth, err)
			}
		}
	}
}

func TestConverterRejectsOversizeScale(t *testing.T) {
	c := &Converter{ScaleFactor: 1e9}
	if _, err := c.ToRaster(solid(2, 2, color.Black)); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v", err)
	}
}

func TestScaleIdentity(t *testing.T) {
	b := bitmapOf("1001")
	got, err := Scale(b, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	assertRows(t, got, "1001")
}

func TestScaleRejects(t *testing.T) {
	b := bitmapOf("11", "11")
	for _, f := range []float64{0, -1, 0.1} {
		if _, err := Scale(b, f, false); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Scale by %v err = %v", f, err)
		}
	}
}

func TestCrop(t *testing.T) {
	assertRows(t, bitmapOf("1011", "0110").Crop(2), "10", "01")
	b := bitmapOf("10")
	if b.Crop(5) != b {
		t.Error("cropping wider than the bitmap should return it unchanged")
	}
}

func TestConverterCheckerboard(t *testing.T) {
	c := &Converter{ScaleFactor: 1, Darkness: 1}
	r, err := c.ToRaster(checkerboard(16, 1))
	if err != nil {
		t.Fatal(err)
	}
	if r.BytesPerLine != 2 || r.Height != 1 || !bytes.Equal(r.Data, []byte{0xAA, 0xAA}) {
		t.Errorf("got %s % x", r, r.Data)
	}
}

func TestConverterDefaults(t *testing.T) {
	c := &Converter{}
	r, err := c.ToRaster(solid(4, 3, color.Black))
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 8 || r.Height != 6 || r.BytesPerLine != 1 {
		t.Fatalf("default scale should double the size, got %s", r)
	}
	for _, b := range r.Data {
		if b != 0xFF {
			t.Fatalf("data = % x", r.Data)
		}
	}
}

func TestConverterMaxWidth(t *testing.T) {
	c := &Converter{ScaleFactor: 1, MaxWidth: 8}
	r, err := c.ToRaster(solid(20, 2, color.Black))
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 8 || r.BytesPerLine != 1 {
		t.Errorf("got %s", r)
	}
}

func TestConverterRejectsEmpty(t *testing.T) {
	c := NewConverter()
	if _, err := c.ToRaster(image.NewRGBA(image.Rect(0, 0, 0, 4))); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v", err)
	}
	if _, err := c.ToRaster(nil); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil image err = %v", err)
	}
}

type rasterSink struct{ got []*Raster }

func (s *rasterSink) WriteRaster(r *Raster) error {
	s.got = append(s.got, r)
	return nil
}

func TestConverterPrint(t *testing.T) {
	sink := &rasterSink{}
	c := &Converter{ScaleFactor: 1}
	if err := c.Print(checkerboard(8, 2), sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.got) != 1 || !bytes.Equal(sink.got[0].Data, []byte{0xAA, 0x55}) {
		t.Errorf("target got %v", sink.got)
	}

	if err := c.Print(image.NewRGBA(image.Rect(0, 0, 3, 0)), sink); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v", err)
	}
	if len(sink.got) != 1 {
		t.Error("invalid image must not reach the target")
	}
}
