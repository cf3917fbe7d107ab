package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/kalari/internal/app"
	"github.com/ayusman/kalari/internal/arena"
	"github.com/ayusman/kalari/internal/audio"
	"github.com/ayusman/kalari/internal/capture"
	"github.com/ayusman/kalari/internal/content"
	"github.com/ayusman/kalari/internal/server"
	"github.com/ayusman/kalari/internal/store"
)

func main() {
	var (
		cameraID    = flag.Int("camera", 0, "camera device ID")
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		contentURL  = flag.String("content-url", "", "level content service URL (empty uses the built-in level)")
		sensitivity = flag.Float64("sensitivity", 0, "motion amplification override (0 keeps the default)")
		noAudio     = flag.Bool("no-audio", false, "disable audio cues")
	)
	flag.Parse()

	fmt.Println("Kalari - Motion-Controlled Word Slicing")

	// Initialize the level cache
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".kalari")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dbDir, "kalari.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	var provider content.Provider
	if *contentURL != "" {
		provider = content.NewClient(*contentURL)
	} else {
		log.Println("No content service configured, using the built-in level")
		provider = content.DefaultStatic()
	}

	var cues audio.Cues = audio.Noop{}
	if !*noAudio {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("Audio unavailable (%v), continuing silent", err)
		} else {
			cues = player
			defer player.Cleanup()
		}
	}

	camera := capture.NewCamera(*cameraID)
	session := arena.NewSession(time.Now().UnixNano())

	a := app.New(app.Config{
		Session:     session,
		Frames:      app.NewCameraSource(camera),
		Provider:    provider,
		Cues:        cues,
		Store:       st,
		Sensitivity: *sensitivity,
	})
	defer a.Stop()

	// A failed start leaves the session in the error phase; the renderer
	// shows the message and the restart endpoint can try again.
	if err := a.Start(); err != nil {
		log.Printf("Startup failed: %v", err)
	}

	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Session:   session,
		Camera:    camera,
		Restart:   a.Restart,
	})

	fmt.Printf("Starting server on %s\n", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.kalari/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".kalari", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
