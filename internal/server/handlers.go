package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nobu-k/100-math-sub004/link"
	"github.com/nobu-k/100-math-sub004/render"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleTopics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.registry.Topics()); err != nil {
		s.log.Error("encode topics", "error", err)
	}
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.registry.Lookup(chi.URLParam(r, "topic"))
	if !ok {
		http.Error(w, "unknown topic", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	presentation := url.Values{}
	for _, k := range []string{KeyFormat, KeyAnswers} {
		if v := q.Get(k); v != "" {
			presentation.Set(k, v)
		}
		q.Del(k)
	}

	format, err := render.ByName(presentationOr(presentation, KeyFormat, s.format))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	answers := s.answers
	if v := presentation.Get(KeyAnswers); v != "" {
		answers = truthy(v)
	}

	l, ok := link.Decode(q.Encode())
	if !ok {
		l.Topic = topic.ID
		target := l.URL(r.URL.Path)
		if len(presentation) > 0 {
			target += "&" + presentation.Encode()
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	sheet := topic.Generate(l.Seed, l.Params)

	var buf bytes.Buffer
	if err := format.Render(&buf, sheet, answers); err != nil {
		s.log.Error("render", "topic", topic.ID, "seed", l.Seed, "format", format.Name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType)
	if format.Name == render.FormatXLSX {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", topic.ID+"-"+l.Seed.String()+format.Ext))
	}
	_, _ = w.Write(buf.Bytes())
}

func presentationOr(v url.Values, key, def string) string {
	if s := v.Get(key); s != "" {
		return s
	}
	return def
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
