package item

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Picture is a raster image placed on the board. Source carries the
// base64-encoded original bytes and is the only thing exported; the
// decoded image is a cache invalidated whenever Source changes. A
// picture whose source fails to decode stays on the board and renders
// as an empty frame.
type Picture struct {
	id      string
	X       float32
	Y       float32
	Width   float32
	Height  float32
	Source  string

	img       image.Image
	decodeBad bool
}

type picturePayload struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Src    string  `json:"src"`
}

func NewPicture(x, y, width, height float32, source string) *Picture {
	return &Picture{id: NewID(), X: x, Y: y, Width: width, Height: height, Source: source}
}

// NewPictureFromImage wraps an already-decoded image, re-encoding it as
// PNG for the exportable source.
func NewPictureFromImage(img image.Image, x, y, width, height float32) (*Picture, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode picture source: %w", err)
	}
	p := NewPicture(x, y, width, height, base64.StdEncoding.EncodeToString(buf.Bytes()))
	p.img = img
	return p, nil
}

func init() {
	registerDecoder(KindPicture, func(id string, data json.RawMessage) (Item, error) {
		var p picturePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &Picture{id: id, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Source: p.Src}, nil
	})
}

func (p *Picture) ID() string   { return p.id }
func (p *Picture) Kind() string { return KindPicture }

// SetSource swaps the image bytes and drops the decoded cache.
func (p *Picture) SetSource(source string) {
	p.Source = source
	p.img = nil
	p.decodeBad = false
}

// Image lazily decodes the source. Decode failures are logged once and
// the item renders empty from then on.
func (p *Picture) Image() image.Image {
	if p.img != nil || p.decodeBad || p.Source == "" {
		return p.img
	}
	raw, err := base64.StdEncoding.DecodeString(p.Source)
	if err == nil {
		var decoded image.Image
		decoded, _, err = image.Decode(bytes.NewReader(raw))
		if err == nil {
			p.img = decoded
			return p.img
		}
	}
	p.decodeBad = true
	log.Printf("[item] picture %s: cannot decode source: %v", p.id, err)
	return nil
}

func (p *Picture) Draw(rc *RenderContext) []fyne.CanvasObject {
	zoom := rc.Coords.Zoom()
	tl := rc.Coords.ToCanvas(geom.NewPoint(p.X, p.Y))
	size := fyne.NewSize(p.Width*zoom, p.Height*zoom)

	img := p.Image()
	if img == nil {
		// Undecodable or still loading: an empty frame marks the spot.
		frame := canvas.NewRectangle(color.Transparent)
		frame.StrokeColor = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
		frame.StrokeWidth = 1
		frame.Move(fyne.NewPos(tl.X, tl.Y))
		frame.Resize(size)
		return []fyne.CanvasObject{frame}
	}

	obj := canvas.NewImageFromImage(img)
	obj.FillMode = canvas.ImageFillStretch
	obj.Move(fyne.NewPos(tl.X, tl.Y))
	obj.Resize(size)
	return []fyne.CanvasObject{obj}
}

func (p *Picture) BoundingBox() *geom.BBox {
	bb := geom.NewBBox(p.X, p.Y, p.Width, p.Height)
	return &bb
}

func (p *Picture) Export() (Record, error) {
	return exportRecord(p.id, KindPicture, picturePayload{
		X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Src: p.Source,
	})
}

func (p *Picture) MoveBy(dx, dy float32) bool {
	p.X += dx
	p.Y += dy
	return true
}

func (p *Picture) ResizeHandles() []string { return CornerHandles }

func (p *Picture) ResizeBy(dx, dy float32, handle string) bool {
	switch handle {
	case HandleNW:
		p.X += dx
		p.Y += dy
		p.Width -= dx
		p.Height -= dy
	case HandleNE:
		p.Y += dy
		p.Width += dx
		p.Height -= dy
	case HandleSE:
		p.Width += dx
		p.Height += dy
	case HandleSW:
		p.X += dx
		p.Width -= dx
		p.Height += dy
	default:
		return false
	}
	return true
}
