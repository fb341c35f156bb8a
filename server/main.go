package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

const version = "v1.0.0"

func main() {
	configFlag := flag.String("c", "", "path to configuration file")
	versionFlag := flag.Bool("v", false, "print version then exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("Radio Mixer Server", version)
		os.Exit(0)
	}

	// A .env file is optional; the environment wins either way.
	godotenv.Load()

	config := NewServerConfig()
	if *configFlag != "" {
		if err := config.LoadFromFile(*configFlag); err != nil {
			log.Fatal(err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		log.Fatal(err)
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Println("Radio Mixer Server", version, "starting up")

	catalog, err := NewAudioCatalog(config.AudioPath())
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Audio catalog:", len(catalog.Files()), "files in", catalog.Path())

	pages, err := NewPageServer(catalog)
	if err != nil {
		log.Fatal(err)
	}

	router := NewRouter(pages, config.StaticPath)

	addr := config.BindAddress + ":" + strconv.Itoa(config.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

func NewRouter(pages *PageServer, staticPath string) http.Handler {
	r := chi.NewRouter()

	// The one page
	r.Get("/", pages.indexPage)
	r.Get("/favicon.ico", faviconPage)

	// Audio files and client assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath))))

	return r
}
