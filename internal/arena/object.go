// Package arena implements the slicing game simulation: spawning, physics,
// swept blade collision, and the score/combo/lives state machine.
package arena

import "github.com/google/uuid"

// Playfield dimensions match the camera frame's coordinate space.
const (
	PlayfieldWidth  = 640.0
	PlayfieldHeight = 480.0
)

// Object is a labeled game object launched into the playfield. IsTarget is
// fixed at creation and determines scoring polarity; Sliced only ever flips
// from false to true.
type Object struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Rotation  float64 `json:"rotation"`
	VRotation float64 `json:"vRotation"`
	IsTarget  bool    `json:"isTarget"`
	Radius    float64 `json:"radius"`
	Sliced    bool    `json:"sliced"`
	Color     string  `json:"color"`
}

// newObjectID returns a unique identifier for render-key stability.
func newObjectID() string {
	return uuid.NewString()
}
