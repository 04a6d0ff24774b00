package item

// ShapeOptions is the style payload shared by rect, circle and line.
type ShapeOptions struct {
	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float32 `json:"strokeWidth"`
	FillColor   string  `json:"fillColor,omitempty"`
}

// DefaultShapeOptions is the style newly created shapes start with.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{StrokeColor: "#000000ff", StrokeWidth: 2}
}

// StrokeOptions parameterizes the freehand outline computation. Size is
// the base stroke diameter; the remaining coefficients are in [0, 1].
type StrokeOptions struct {
	Color      string  `json:"color"`
	Size       float32 `json:"size"`
	Smoothing  float32 `json:"smoothing"`
	Thinning   float32 `json:"thinning"`
	Streamline float32 `json:"streamline"`
}

func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Color:      "#000000ff",
		Size:       4,
		Smoothing:  0.5,
		Thinning:   0.5,
		Streamline: 0.5,
	}
}

// DefaultEraserOptions matches the pen but wider; the eraser paints the
// background color, it never deletes geometry.
func DefaultEraserOptions() StrokeOptions {
	o := DefaultStrokeOptions()
	o.Size = 20
	o.Thinning = 0
	return o
}

// TextOptions is the style payload of text items.
type TextOptions struct {
	FontSize  float32 `json:"fontSize"`
	FontColor string  `json:"fontColor"`
}

func DefaultTextOptions() TextOptions {
	return TextOptions{FontSize: 16, FontColor: "#000000ff"}
}
