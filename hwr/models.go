package hwr

// Request models for the MyScript batch API

// BatchInput is the body of a recognition request.
type BatchInput struct {
	Configuration *Configuration `json:"configuration,omitempty"`
	ContentType   *string        `json:"contentType"`
	StrokeGroups  []*StrokeGroup `json:"strokeGroups"`
	Width         int32          `json:"width,omitempty"`
	Height        int32          `json:"height,omitempty"`
	XDPI          float32        `json:"xDPI,omitempty"`
	YDPI          float32        `json:"yDPI,omitempty"`
}

type Configuration struct {
	Lang string `json:"lang,omitempty"`
}

type StrokeGroup struct {
	Strokes []*Stroke `json:"strokes"`
}

// Stroke is one pen-down run. T holds synthetic timestamps in ms.
type Stroke struct {
	X           []float32 `json:"x"`
	Y           []float32 `json:"y"`
	T           []int64   `json:"t,omitempty"`
	PointerType string    `json:"pointerType,omitempty"`
}
