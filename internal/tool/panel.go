package tool

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/item"
)

// Option-panel building blocks shared by the tools.

// colorSwatch is a tappable color square. Tapping it fires the panel's
// "color chosen" callback; the tool owning the panel is the consumer.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var paletteColors = []color.Color{
	color.NRGBA{A: 255},                         // black
	color.NRGBA{R: 220, A: 255},                 // red
	color.NRGBA{G: 160, A: 255},                 // green
	color.NRGBA{B: 220, A: 255},                 // blue
	color.NRGBA{R: 230, G: 180, A: 255},         // orange
	color.NRGBA{R: 130, G: 130, B: 130, A: 255}, // gray
}

// newPalette lays out the standard color row. chosen receives the color
// already formatted for an item payload.
func newPalette(chosen func(hex string)) fyne.CanvasObject {
	row := container.NewHBox()
	for _, c := range paletteColors {
		row.Add(newColorSwatch(c, func(c color.Color) {
			chosen(item.FormatColor(c))
		}))
	}
	return row
}

// newWidthSlider builds the stroke/size slider row.
func newWidthSlider(label string, value float32, changed func(float32)) fyne.CanvasObject {
	slider := widget.NewSlider(1, 50)
	slider.SetValue(float64(value))
	slider.OnChanged = func(v float64) { changed(float32(v)) }
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, slider)
}
