// Package imaging normaliza las fotos subidas (empleados, boletas del concurso) a JPEG.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // registra el decoder PNG
	"net/http"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

var _ ports.ImageProcessor = (*Processor)(nil)

// Errores de entrada; el caso de uso los traduce a 400.
var (
	ErrUnsupportedFormat = errors.New("la imagen debe ser png, jpeg o webp")
	ErrDecode            = errors.New("no se pudo decodificar la imagen")
	ErrDimensions        = errors.New("dimensiones de imagen inválidas")
)

// Processor implementa ports.ImageProcessor con golang.org/x/image.
type Processor struct {
	Quality int // calidad JPEG (1-100)
}

// NewProcessor construye el procesador con calidad 85.
func NewProcessor() *Processor { return &Processor{Quality: 85} }

// Square recorta un cuadrado (el indicado o el central) y lo escala a size x size.
func (p *Processor) Square(data []byte, crop *dto.PhotoCrop, size int) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, ErrDimensions
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	side := min(w, h)
	x, y := (w-side)/2, (h-side)/2
	if crop != nil && crop.Size > 0 && crop.Size <= side {
		side, x, y = crop.Size, crop.X, crop.Y
	}
	x = clamp(x, 0, w-side)
	y = clamp(y, 0, h-side)

	src := image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+side, b.Min.Y+y+side)
	dst := whiteCanvas(size, size)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Over, nil)
	return p.encode(dst)
}

// Fit reduce la imagen para que su lado mayor no supere maxSide; nunca amplía.
func (p *Processor) Fit(data []byte, maxSide int) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide > 0 && (w > maxSide || h > maxSide) {
		if w >= h {
			w, h = maxSide, max(1, h*maxSide/b.Dx())
		} else {
			w, h = max(1, w*maxSide/b.Dy()), maxSide
		}
	}
	dst := whiteCanvas(w, h)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return p.encode(dst)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func decode(raw []byte) (image.Image, error) {
	switch http.DetectContentType(raw) {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, ErrUnsupportedFormat
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, webpErr := webp.Decode(bytes.NewReader(raw))
		if webpErr != nil {
			return nil, ErrDecode
		}
		img = decoded
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, ErrDimensions
	}
	return img, nil
}

// whiteCanvas fondo blanco para que las transparencias PNG no queden negras en JPEG.
func whiteCanvas(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	return dst
}

func (p *Processor) encode(img image.Image) ([]byte, error) {
	q := p.Quality
	if q <= 0 || q > 100 {
		q = jpeg.DefaultQuality
	}
	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: q}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
