package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gnote/dnttools/config"
	"github.com/gnote/dnttools/convert"
	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/log"
	"github.com/gnote/dnttools/shell"
	"github.com/gnote/dnttools/svg"
	"github.com/gnote/dnttools/version"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxUploadSize bounds request bodies.
const maxUploadSize = 64 << 20

type ApiServer struct {
	cfg  config.Config
	opts convert.Options
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewApiServer(cfg config.Config) (*ApiServer, error) {
	opts, err := convert.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &ApiServer{cfg: cfg, opts: opts}, nil
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Data: data})
}

// statusFor maps conversion failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dnt.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, dnt.ErrUnknownPen),
		errors.Is(err, dnt.ErrNoData),
		errors.Is(err, dnt.ErrRotation),
		errors.Is(err, dnt.ErrDataOffset),
		errors.Is(err, svg.ErrZeroDPI):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *ApiServer) readDocument(w http.ResponseWriter, r *http.Request) (*dnt.Document, error) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		return nil, errors.Wrap(err, "can't read body")
	}
	return dnt.Unmarshal(body)
}

// POST /api/convert?format=<svg|png|pdf|zip|dnt>&normalize=<bool>&stylesheet=<href>
func (s *ApiServer) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	format := convert.SVG
	if v := query.Get("format"); v != "" {
		f, err := convert.ParseFormat(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		format = f
	}

	normalize := s.opts.Normalize
	if v := query.Get("normalize"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid normalize value %q", v))
			return
		}
		normalize = b
	}

	opts := s.opts
	if v := query.Get("stylesheet"); v != "" {
		opts.Stylesheet = v
	}

	doc, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	if normalize {
		if err := doc.Rotate(); err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
	}

	var buf bytes.Buffer
	if err := convert.Render(&buf, doc, format, opts); err != nil {
		log.Trace.Printf("[%s] convert failed: %v", w.Header().Get(requestIDHeader), err)
		s.writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	buf.WriteTo(w)
}

// POST /api/info
func (s *ApiServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeSuccess(w, shell.DocumentToJSON("", doc))
}

// GET /api/version
func (s *ApiServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeSuccess(w, map[string]string{"version": version.Version})
}

const requestIDHeader = "X-Request-Id"

// withRequestID tags every request with an id for the logs.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		log.Trace.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *ApiServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/convert", s.handleConvert)
	mux.HandleFunc("/api/info", s.handleInfo)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root endpoint with API documentation
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
	<title>dnttools REST API</title>
</head>
<body>
	<h1>dnttools REST API</h1>
	<h2>Endpoints:</h2>
	<ul>
		<li>POST /api/convert - Convert a DNT body (format=svg|png|pdf|zip|dnt, normalize, stylesheet)</li>
		<li>POST /api/info - Describe a DNT body</li>
		<li>GET /api/version - Get version</li>
	</ul>
</body>
</html>
		`)
	})

	return withRequestID(mux)
}

func runServerMode(cfg config.Config, port string) {
	server, err := NewApiServer(cfg)
	if err != nil {
		log.Error.Fatalf("Failed to initialize API server: %v", err)
	}

	log.Info.Printf("Starting HTTP server on port %s", port)
	if err := http.ListenAndServe(":"+port, server.Handler()); err != nil {
		log.Error.Fatalf("Server failed: %v", err)
	}
}
