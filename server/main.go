package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/kardianos/osext"
	"github.com/reiver/go-telnet"
	log "github.com/sirupsen/logrus"
)

var flagHTTPAddr = flag.String("http", ":8080", "listening address for the HTTP/WebSocket server (eg -http :8080)")
var flagTelnetAddr = flag.String("telnet", ":3456", "listening address for the admin telnet console")
var flagWebDir = flag.String("web", "", "directory with the browser client (default: <executable dir>/web)")
var flagWidth = flag.Float64("width", WorldWidth, "world width in pixels")
var flagHeight = flag.Float64("height", WorldHeight, "world height in pixels")
var flagCapacity = flag.Int("capacity", NodeCapacity, "quadtree node capacity")

func main() {
	flag.Parse()
	initLogging()

	// Create the world and start broadcasting
	world := NewWorld(*flagWidth, *flagHeight, *flagCapacity)
	world.Start()

	// Admin console
	go func() {
		log.Infof("Telnet console listening on %s", *flagTelnetAddr)
		if err := telnet.ListenAndServe(*flagTelnetAddr, &ConsoleHandler{World: world}); err != nil {
			log.Fatalf("Telnet server error: %v", err)
		}
	}()

	// Setup HTTP routes
	http.HandleFunc("/ws", HandleWebSocket(world))

	webDir := *flagWebDir
	if webDir == "" {
		if folder, err := osext.ExecutableFolder(); err == nil {
			webDir = filepath.Join(folder, "web")
		}
	}
	if stat, err := os.Stat(webDir); err == nil && stat.IsDir() {
		http.Handle("/", http.FileServer(http.Dir(webDir)))
		log.Infof("Serving browser client from %s", webDir)
	} else {
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("qtree-demo server running"))
		})
		log.Warnf("Web directory %q not found, serving status line only", webDir)
	}

	// Start the server
	log.Infof("Starting server on %s", *flagHTTPAddr)
	log.Infof("WebSocket endpoint: ws://localhost%s/ws", *flagHTTPAddr)

	if err := http.ListenAndServe(*flagHTTPAddr, nil); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initLogging reads the log level from QTREE_LOG, defaulting to info.
func initLogging() {
	level := log.InfoLevel
	if s := os.Getenv("QTREE_LOG"); s != "" {
		parsed, err := log.ParseLevel(s)
		if err != nil {
			log.Warnf("Unknown QTREE_LOG level %q, using info", s)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
}
