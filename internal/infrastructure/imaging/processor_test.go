package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestSquare_CentralYConCrop(t *testing.T) {
	p := imaging.NewProcessor()
	src := pngBytes(t, 200, 100)

	out, err := p.Square(src, nil, 64)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), decodeJPEG(t, out).Bounds())

	// Crop fuera de rango se ajusta al borde.
	out, err = p.Square(src, &dto.PhotoCrop{X: 190, Y: 50, Size: 80}, 32)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), decodeJPEG(t, out).Bounds())
}

func TestFit(t *testing.T) {
	p := imaging.NewProcessor()

	out, err := p.Fit(pngBytes(t, 300, 150), 100)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), decodeJPEG(t, out).Bounds())

	out, err = p.Fit(pngBytes(t, 40, 80), 100)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 80), decodeJPEG(t, out).Bounds(), "no amplía")
}

func TestFormatoNoSoportado(t *testing.T) {
	_, err := imaging.NewProcessor().Square([]byte("%PDF-1.4 no es imagen"), nil, 64)
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}
