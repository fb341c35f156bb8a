package main

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
)

const stationCount = 4

//go:embed templates/*
var content embed.FS

// PageServer renders the mixer page from state computed once at startup.
type PageServer struct {
	catalog *AudioCatalog
	index   *template.Template
}

func NewPageServer(catalog *AudioCatalog) (*PageServer, error) {
	tmpl, err := template.ParseFS(content, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &PageServer{catalog: catalog, index: tmpl}, nil
}

type IndexData struct {
	StationCount int
	Stations     []int
	AudioFiles   []string
}

func (s *PageServer) indexPage(w http.ResponseWriter, r *http.Request) {
	data := IndexData{
		StationCount: stationCount,
		AudioFiles:   s.catalog.Files(),
	}
	for i := 1; i <= stationCount; i++ {
		data.Stations = append(data.Stations, i)
	}
	// Render to a buffer so a template failure can still become a clean
	// 500 instead of a truncated page.
	var buf bytes.Buffer
	if err := s.index.Execute(&buf, data); err != nil {
		log.Println("could not render index page:", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Browsers request this unprompted; answer with an empty response so the
// log stays free of not-found noise.
func faviconPage(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
