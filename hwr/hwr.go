// Package hwr sends strokes to the MyScript handwriting recognition service.
package hwr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/log"
	"golang.org/x/sync/semaphore"
)

var NoContent = errors.New("no page content")

const (
	ApplicationKeyEnvVar = "DNT_HWR_APPLICATIONKEY"
	HmacEnvVar           = "DNT_HWR_HMAC"
)

// Config holds HWR configuration
type Config struct {
	Lang      string
	InputType string
	// BatchSize bounds concurrent requests in RecognizeAll.
	BatchSize int64
}

// Recognize returns the text written on one page.
func Recognize(ctx context.Context, doc *dnt.Document, cfg Config, applicationKey, hmacKey string) (string, error) {
	if applicationKey == "" {
		return "", fmt.Errorf("%s environment variable is required", ApplicationKeyEnvVar)
	}
	if hmacKey == "" {
		return "", fmt.Errorf("%s environment variable is required", HmacEnvVar)
	}

	contenttype, output := setContentType(cfg.InputType)
	js, err := getJSON(doc, contenttype, cfg.Lang)
	if err != nil {
		return "", err
	}

	body, err := SendRequest(ctx, applicationKey, hmacKey, js, output)
	if err != nil {
		return "", err
	}
	log.Trace.Printf("Received response (%d bytes)", len(body))

	return extractTextFromResponse(body), nil
}

// RecognizeAll recognizes several pages, cfg.BatchSize at a time. Pages
// that fail are left empty.
func RecognizeAll(ctx context.Context, docs []*dnt.Document, cfg Config, applicationKey, hmacKey string) []string {
	batch := cfg.BatchSize
	if batch < 1 {
		batch = 1
	}

	result := make([]string, len(docs))
	sem := semaphore.NewWeighted(batch)
	for p := range docs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("Failed to acquire semaphore: %v", err)
			break
		}
		go func(p int) {
			defer sem.Release(1)
			text, err := Recognize(ctx, docs[p], cfg, applicationKey, hmacKey)
			if err != nil {
				log.Trace.Printf("Page %d: %v", p, err)
				return
			}
			result[p] = text
		}(p)
	}

	// Wait for all goroutines to finish
	if err := sem.Acquire(ctx, batch); err != nil {
		log.Trace.Printf("Failed to acquire semaphore: %v", err)
	}

	return result
}

// downsamplePoints thins long strokes to keep payloads small. The first
// and last points are always kept.
func downsamplePoints(points []dnt.Point) []dnt.Point {
	if len(points) <= 200 {
		return points
	}

	sampleRate := 2
	if len(points) > 2000 {
		sampleRate = 6
	} else if len(points) > 1000 {
		sampleRate = 4
	} else if len(points) > 500 {
		sampleRate = 3
	}

	result := make([]dnt.Point, 0, len(points)/sampleRate+2)
	result = append(result, points[0])
	for i := sampleRate; i < len(points)-1; i += sampleRate {
		result = append(result, points[i])
	}
	result = append(result, points[len(points)-1])

	return result
}

// getJSON converts a page to MyScript API JSON format
func getJSON(doc *dnt.Document, contenttype string, lang string) ([]byte, error) {
	batch := BatchInput{
		Configuration: &Configuration{
			Lang: lang,
		},
		StrokeGroups: []*StrokeGroup{
			{},
		},
		ContentType: &contenttype,
		Width:       int32(doc.XSize),
		Height:      int32(doc.YSize),
		XDPI:        float32(doc.DPI),
		YDPI:        float32(doc.DPI),
	}
	sg := batch.StrokeGroups[0]

	lines, err := dnt.Polylines(doc)
	if err != nil {
		if errors.Is(err, dnt.ErrNoData) {
			return nil, NoContent
		}
		return nil, err
	}

	totalPoints := 0
	timestamp := int64(0)
	for _, line := range lines {
		points := downsamplePoints(line.Points)
		stroke := Stroke{
			X:           make([]float32, 0, len(points)),
			Y:           make([]float32, 0, len(points)),
			T:           make([]int64, 0, len(points)),
			PointerType: "PEN",
		}
		for _, pt := range points {
			stroke.X = append(stroke.X, float32(pt.X))
			stroke.Y = append(stroke.Y, float32(pt.Y))
			stroke.T = append(stroke.T, timestamp)
			timestamp += 16
		}
		sg.Strokes = append(sg.Strokes, &stroke)
		totalPoints += len(points)
	}

	if len(sg.Strokes) == 0 {
		return nil, NoContent
	}
	log.Trace.Printf("getJSON: %d strokes with %d points", len(sg.Strokes), totalPoints)

	return json.Marshal(batch)
}

// setContentType maps input type to MyScript content type and output MIME type
func setContentType(requested string) (contenttype string, output string) {
	switch strings.ToLower(requested) {
	case "math":
		return "Math", "application/x-latex"
	case "diagram":
		return "Diagram", "image/svg+xml"
	default:
		return "Text", "text/plain"
	}
}

// extractTextFromResponse pulls the recognized text out of a response,
// which is either plain output or Jiix JSON.
func extractTextFromResponse(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	if data[0] == '{' {
		if text, ok := extractTextFromJiix(data); ok {
			return text
		}
	}

	return string(data)
}

type jiixItem struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (i jiixItem) String() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Text
}

type jiix struct {
	jiixItem
	Words []jiixItem `json:"words"`
	Chars []jiixItem `json:"chars"`
}

// extractTextFromJiix extracts text from Jiix JSON format
func extractTextFromJiix(data []byte) (string, bool) {
	var j jiix
	if err := json.Unmarshal(data, &j); err != nil {
		log.Trace.Printf("extractTextFromJiix: failed to unmarshal JSON: %v", err)
		return "", false
	}

	if j.Text != "" {
		return j.Text, true
	}
	if j.Label != "" {
		return j.Label, true
	}

	join := func(items []jiixItem, sep string) string {
		var parts []string
		for _, it := range items {
			if s := it.String(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	}
	if s := join(j.Words, " "); s != "" {
		return s, true
	}
	if s := join(j.Chars, ""); s != "" {
		return s, true
	}

	return "", false
}
