// Package app wires the capture, motion, arena, content, and audio layers
// into the running game: startup, the fixed-rate tick loop, and restarts.
package app

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ayusman/kalari/internal/arena"
	"github.com/ayusman/kalari/internal/audio"
	"github.com/ayusman/kalari/internal/capture"
	"github.com/ayusman/kalari/internal/content"
	"github.com/ayusman/kalari/internal/motion"
	"github.com/ayusman/kalari/internal/store"
)

// User-facing messages shown by the renderer when startup fails.
const (
	MsgCameraUnavailable  = "camera unavailable"
	MsgContentUnavailable = "level content unavailable"
)

// FrameSource delivers downsampled frames to the tick loop.
type FrameSource interface {
	Open() error
	Close() error
	ReadFrame() (*motion.Frame, error)
}

// cameraSource adapts a capture.Camera into a FrameSource.
type cameraSource struct {
	camera capture.Camera
}

// NewCameraSource wraps a camera so the pipeline reads downsampled frames.
func NewCameraSource(camera capture.Camera) FrameSource {
	return &cameraSource{camera: camera}
}

func (c *cameraSource) Open() error  { return c.camera.Open() }
func (c *cameraSource) Close() error { return c.camera.Close() }

func (c *cameraSource) ReadFrame() (*motion.Frame, error) {
	mat, err := c.camera.ReadFrame()
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	frame := capture.Downsample(mat)
	if frame == nil {
		return nil, errors.New("unusable camera frame")
	}
	return frame, nil
}

// Config holds configuration options for the application.
type Config struct {
	Session  *arena.Session
	Frames   FrameSource
	Provider content.Provider
	Cues     audio.Cues
	Store    *store.Store
	// Sensitivity overrides the motion amplification factor when > 0.
	Sensitivity float64
}

// App orchestrates the game: it owns the startup sequence and the single
// tick loop that drives the session.
type App struct {
	config    Config
	estimator *motion.Estimator
	mu        sync.Mutex
	stopCh    chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Cues == nil {
		config.Cues = audio.Noop{}
	}

	a := &App{
		config:    config,
		estimator: motion.NewEstimator(capture.DefaultWidth, capture.DefaultHeight),
	}
	if config.Sensitivity > 0 {
		a.estimator.SetSensitivity(config.Sensitivity)
	}
	return a
}

// Session returns the simulation session.
func (a *App) Session() *arena.Session {
	return a.config.Session
}

// Start runs the startup sequence: enter the loading phase, open the
// camera, fetch level content, then begin play and launch the tick loop.
// A failed camera open or level fetch moves the game to the error phase.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	a.config.Session.StartLoading()

	if err := a.config.Frames.Open(); err != nil {
		a.config.Session.Fail(MsgCameraUnavailable)
		return err
	}

	level, err := a.loadLevel()
	if err != nil {
		a.config.Session.Fail(MsgContentUnavailable)
		return err
	}
	a.config.Session.SetLevel(level)

	a.estimator.Reset()
	a.config.Session.Begin()

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Printf("Round started: theme %q", level.Theme)
	return nil
}

// loadLevel fetches a fresh level from the content provider, caching it on
// success. When the provider is unavailable the most recently cached level
// is used instead, so a content outage only blocks a first-ever launch.
func (a *App) loadLevel() (*content.Level, error) {
	ctx, cancel := context.WithTimeout(context.Background(), content.DefaultTimeout)
	defer cancel()

	level, err := a.config.Provider.FetchLevel(ctx)
	if err == nil {
		if a.config.Store != nil {
			if _, saveErr := a.config.Store.Levels().Save(level); saveErr != nil {
				log.Printf("Failed to cache level: %v", saveErr)
			}
		}
		return level, nil
	}

	if a.config.Store != nil {
		cached, cacheErr := a.config.Store.Levels().Latest()
		if cacheErr == nil {
			log.Printf("Content service unavailable (%v), using cached level %q", err, cached.Level.Theme)
			return &cached.Level, nil
		}
	}

	return nil, err
}

// Restart tears down any running loop and runs the startup sequence again.
func (a *App) Restart() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	if err := a.Start(); err != nil {
		log.Printf("Restart failed: %v", err)
	}
}

// Stop halts the tick loop and releases the camera.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	if err := a.config.Frames.Close(); err != nil {
		log.Printf("Error closing frame source: %v", err)
	}

	log.Println("Game stopped")
}

// running reports whether the tick loop is active.
func (a *App) running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopCh != nil
}

// finish clears the stop channel when the loop exits on its own.
func (a *App) finish(stopCh chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopCh == stopCh {
		a.stopCh = nil
	}
}
