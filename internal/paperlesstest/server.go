// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paperlesstest runs an in-process fake of the Paperless-NGX REST
// API for tests. It checks the token, records every request, echoes CRUD
// calls back as JSON and accepts multipart document uploads.
package paperlesstest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-paperless/internal/logger"
	"github.com/MKhiriev/go-paperless/internal/utils"
	"github.com/MKhiriev/go-paperless/models"
)

// DefaultToken is the API token the server accepts unless configured
// otherwise.
const DefaultToken = "test-token"

// RejectedUploadMessage is the body of a rejected post_document call.
const RejectedUploadMessage = "document rejected"

// Request is one request received by the server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// Body is the raw body of CRUD requests.
	Body []byte

	// Form and Document are set for post_document uploads.
	Form     map[string]string
	Document *models.BinaryData
}

// JSONBody decodes the recorded body into a generic map.
func (r Request) JSONBody() (map[string]any, error) {
	var out map[string]any
	err := json.Unmarshal(r.Body, &out)
	return out, err
}

// Echo is the JSON response of every CRUD call.
type Echo struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Query  map[string]string `json:"query,omitempty"`
	Body   map[string]any    `json:"body,omitempty"`
}

// Server is a fake Paperless-NGX instance.
type Server struct {
	*httptest.Server

	token string
	// filename -> HTTP status returned for its upload
	rejected  map[string]int
	documents map[int64]models.BinaryData
	delay     time.Duration

	mu       sync.Mutex
	requests []Request

	logger *logger.Logger
}

type Option func(*Server)

// WithToken sets the accepted API token.
func WithToken(token string) Option {
	return func(s *Server) { s.token = token }
}

// RejectUpload makes uploads of fileName fail with status.
func RejectUpload(fileName string, status int) Option {
	return func(s *Server) { s.rejected[fileName] = status }
}

// WithDocument stores a file served by /documents/{id}/download/.
func WithDocument(id int64, file models.BinaryData) Option {
	return func(s *Server) { s.documents[id] = file }
}

// WithUploadDelay slows every upload down by d.
func WithUploadDelay(d time.Duration) Option {
	return func(s *Server) { s.delay = d }
}

// New starts a server that is closed when the test ends.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		token:     DefaultToken,
		rejected:  make(map[string]int),
		documents: make(map[int64]models.BinaryData),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogger)
	router.Use(s.withToken)

	router.Route("/api", func(r chi.Router) {
		r.Post("/documents/post_document/", s.postDocument)
		r.Get("/documents/{id}/download/", s.download)

		r.Get("/{collection}/", s.echo)
		r.Post("/{collection}/", s.echo)
		r.Get("/{collection}/{id}/", s.echo)
		r.Put("/{collection}/{id}/", s.echo)
		r.Patch("/{collection}/{id}/", s.echo)
		r.Delete("/{collection}/{id}/", s.remove)
	})

	return router
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false when none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
}

func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(s.logger.WithContext(r.Context()))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token "+s.token {
			logger.FromRequest(r).Warn().Str("path", r.URL.Path).Msg("invalid token")
			_, _ = utils.WriteJSON(w, map[string]string{"detail": "Invalid token."}, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) echo(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"detail": err.Error()}, http.StatusBadRequest)
		return
	}
	s.record(newRequest(r, body))

	resp := Echo{Method: r.Method, Path: r.URL.Path}
	if len(r.URL.Query()) > 0 {
		resp.Query = make(map[string]string)
		for k := range r.URL.Query() {
			resp.Query[k] = r.URL.Query().Get(k)
		}
	}
	if len(body) > 0 {
		if err = json.Unmarshal(body, &resp.Body); err != nil {
			_, _ = utils.WriteJSON(w, map[string]string{"detail": "JSON parse error"}, http.StatusBadRequest)
			return
		}
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	_, _ = utils.WriteJSON(w, resp, status)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	s.record(newRequest(r, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	s.record(newRequest(r, nil))

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"detail": "Not found."}, http.StatusNotFound)
		return
	}
	file, ok := s.documents[id]
	if !ok {
		_, _ = utils.WriteJSON(w, map[string]string{"detail": "Not found."}, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

func (s *Server) postDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.record(newRequest(r, nil))
		_, _ = utils.WriteText(w, "expected multipart form", http.StatusBadRequest)
		return
	}

	req := newRequest(r, nil)
	req.Form = make(map[string]string)
	for k, v := range r.MultipartForm.Value {
		if len(v) > 0 {
			req.Form[k] = v[0]
		}
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		s.record(req)
		_, _ = utils.WriteText(w, "document is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := readDocument(file, header)
	if err != nil {
		s.record(req)
		_, _ = utils.WriteText(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Document = &doc
	s.record(req)

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	if status, ok := s.rejected[doc.FileName]; ok {
		log.Info().Str("filename", doc.FileName).Int("status", status).Msg("rejecting upload")
		_, _ = utils.WriteText(w, RejectedUploadMessage, status)
		return
	}

	// paperless answers with the consumption task id as plain text
	_, _ = utils.WriteText(w, uuid.NewString()+"\n", http.StatusOK)
}

func readDocument(file multipart.File, header *multipart.FileHeader) (models.BinaryData, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return models.BinaryData{}, err
	}
	return models.BinaryData{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     buf.Bytes(),
	}, nil
}

func newRequest(r *http.Request, body []byte) Request {
	return Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	}
}
