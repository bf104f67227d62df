package hwr

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() *dnt.Document {
	d := dnt.New()
	d.DPI = 300
	d.XSize = 2550
	d.YSize = 3300
	d.Samples = []dnt.Sample{
		{Pen: dnt.CodeBlack, X: 1, Y: 2},
		{Pen: dnt.CodeBlack, X: 3, Y: 4},
		{Pen: dnt.CodeNone, X: 0, Y: 0},
		{Pen: dnt.CodeBlue, X: 5, Y: 6},
	}
	return d
}

func TestGetJSON(t *testing.T) {
	js, err := getJSON(testDoc(), "Text", "en_US")
	require.NoError(t, err)

	var batch BatchInput
	require.NoError(t, json.Unmarshal(js, &batch))
	assert.Equal(t, "Text", *batch.ContentType)
	assert.Equal(t, "en_US", batch.Configuration.Lang)
	assert.Equal(t, int32(2550), batch.Width)
	assert.Equal(t, float32(300), batch.XDPI)
	require.Len(t, batch.StrokeGroups, 1)
	require.Len(t, batch.StrokeGroups[0].Strokes, 2)

	s := batch.StrokeGroups[0].Strokes[0]
	assert.Equal(t, []float32{1, 3}, s.X)
	assert.Equal(t, []float32{2, 4}, s.Y)
	assert.Equal(t, []int64{0, 16}, s.T)
	assert.Equal(t, []int64{32}, batch.StrokeGroups[0].Strokes[1].T)
}

func TestGetJSONNoContent(t *testing.T) {
	d := testDoc()
	d.Samples = nil
	_, err := getJSON(d, "Text", "")
	assert.Equal(t, NoContent, err)

	d.Samples = []dnt.Sample{{Pen: dnt.CodeNone}}
	_, err = getJSON(d, "Text", "")
	assert.Equal(t, NoContent, err)
}

func TestDownsamplePoints(t *testing.T) {
	pts := make([]dnt.Point, 601)
	for i := range pts {
		pts[i] = dnt.Point{X: uint32(i)}
	}

	out := downsamplePoints(pts)
	assert.Equal(t, uint32(0), out[0].X)
	assert.Equal(t, uint32(600), out[len(out)-1].X)
	assert.Equal(t, uint32(3), out[1].X)
	assert.Len(t, out, 201)

	assert.Len(t, downsamplePoints(pts[:10]), 10)
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractTextFromResponse([]byte("  ")))
	assert.Equal(t, "plain", extractTextFromResponse([]byte("plain\n")))
	assert.Equal(t, "hello", extractTextFromResponse([]byte(`{"label":"hello"}`)))
	assert.Equal(t, "a b", extractTextFromResponse([]byte(`{"words":[{"label":"a"},{"text":"b"}]}`)))
	assert.Equal(t, "ab", extractTextFromResponse([]byte(`{"chars":[{"label":"a"},{"label":"b"}]}`)))
	assert.Equal(t, `{"other":1}`, extractTextFromResponse([]byte(`{"other":1}`)))
}

func TestSetContentType(t *testing.T) {
	c, o := setContentType("MATH")
	assert.Equal(t, "Math", c)
	assert.Equal(t, "application/x-latex", o)

	c, o = setContentType("")
	assert.Equal(t, "Text", c)
	assert.Equal(t, "text/plain", o)
}

func withServer(t *testing.T, handler http.HandlerFunc) {
	srv := httptest.NewServer(handler)
	old := APIURL
	APIURL = srv.URL
	t.Cleanup(func() {
		APIURL = old
		srv.Close()
	})
}

func TestRecognize(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("applicationKey"))
		assert.NotEmpty(t, r.Header.Get("hmac"))
		body, _ := ioutil.ReadAll(r.Body)
		assert.Contains(t, string(body), `"strokeGroups"`)
		w.Write([]byte(`{"label":"hello world"}`))
	})

	text, err := Recognize(context.Background(), testDoc(), Config{Lang: "en_US"}, "key", "secret")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	texts := RecognizeAll(context.Background(), []*dnt.Document{testDoc(), testDoc()}, Config{BatchSize: 2}, "key", "secret")
	assert.Equal(t, []string{"hello world", "hello world"}, texts)
}

func TestRecognizeErrors(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := Recognize(context.Background(), testDoc(), Config{}, "", "secret")
	assert.Error(t, err)
	_, err = Recognize(context.Background(), testDoc(), Config{}, "key", "")
	assert.Error(t, err)
	_, err = Recognize(context.Background(), testDoc(), Config{}, "key", "secret")
	assert.Error(t, err)
}
