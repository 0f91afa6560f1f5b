// internal/httpserver/routes_form.go
//
// Server-rendered form page, the browser counterpart of the console:
//   - GET  /     → empty form prefilled with a perfect game
//   - POST /form → form-encoded "line"; re-renders the page with the
//                  frame table or the error message
//
// Nothing is kept between requests: the submitted line goes in, the page
// with its output comes back.

package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bowling/internal/examples"
	"github.com/robalobadob/bowling/internal/scorecard"
)

const defaultFormLine = "X X X X X X X X X XXX"

// formPage is the data passed to the form template.
type formPage struct {
	Line     string
	Output   string
	Examples []examples.Example
}

// mountForm registers the form routes.
func (s *Server) mountForm(r chi.Router) {
	r.Get("/", s.handleFormPage)
	r.Post("/form", s.handleFormSubmit)
}

// handleFormPage renders the blank form.
func (s *Server) handleFormPage(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, http.StatusOK, formPage{Line: defaultFormLine})
}

// handleFormSubmit scores the submitted line and renders the result or error.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)
	if err := r.ParseForm(); err != nil {
		if isTooLarge(err) {
			s.renderForm(w, http.StatusRequestEntityTooLarge, formPage{Output: "Error: line too long"})
			return
		}
		s.renderForm(w, http.StatusBadRequest, formPage{Output: "Error: bad form"})
		return
	}
	line := strings.TrimSpace(r.PostFormValue("line"))
	if len(line) > s.cfg.MaxLineLength {
		s.renderForm(w, http.StatusRequestEntityTooLarge, formPage{Output: "Error: line too long"})
		return
	}

	page := formPage{Line: line}
	res, err := s.score(r, line)
	if err != nil {
		page.Output = "Error: " + err.Error()
	} else {
		page.Output = frameTable(res)
	}
	s.renderForm(w, http.StatusOK, page)
}

func (s *Server) renderForm(w http.ResponseWriter, status int, page formPage) {
	page.Examples = s.examples
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.form.Execute(w, page); err != nil {
		log.Error().Err(err).Msg("render form")
	}
}

// frameTable is the plain-text table shown under the form.
func frameTable(res scorecard.Result) string {
	var b strings.Builder
	b.WriteString("Frame-by-frame cumulative scores:\n")
	for i, v := range res.Frames {
		fmt.Fprintf(&b, "Frame %2d: %d\n", i+1, v)
	}
	fmt.Fprintf(&b, "TOTAL: %d\n", res.Total)
	return b.String()
}
