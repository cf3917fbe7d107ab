package arena

import "time"

// Phase is the game state machine's current state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhaseLoading  Phase = "loading"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
	PhaseError    Phase = "error"
)

// Scoring constants.
const (
	// InitialLives is the number of lives at the start of a playthrough.
	InitialLives = 3
	// BaseScore is awarded per target hit before the combo bonus.
	BaseScore = 10
	// ComboBonus is the extra score per combo step at the time of the hit.
	ComboBonus = 2
	// ComboWindow is the debounce period after a target hit; if no further
	// target is hit before it elapses, the combo resets to 0.
	ComboWindow = 1500 * time.Millisecond
)

// Round owns the score, combo counter, lives and game phase. Score never
// decreases during play, lives never increase, and combo resets on any
// distractor hit or when the combo window lapses.
type Round struct {
	phase      Phase
	score      int
	combo      int
	lives      int
	comboTimer time.Duration
	message    string
}

// NewRound creates a Round in the menu phase.
func NewRound() *Round {
	return &Round{phase: PhaseMenu, lives: InitialLives}
}

func (r *Round) Phase() Phase    { return r.phase }
func (r *Round) Score() int      { return r.score }
func (r *Round) Combo() int      { return r.combo }
func (r *Round) Lives() int      { return r.lives }
func (r *Round) Message() string { return r.message }

// StartLoading moves the machine into the level-loading phase. Reached from
// the menu on game start and from game-over or error on restart.
func (r *Round) StartLoading() {
	r.phase = PhaseLoading
	r.message = ""
}

// Begin enters the playing phase with score, combo and lives reset.
func (r *Round) Begin() {
	r.phase = PhasePlaying
	r.score = 0
	r.combo = 0
	r.lives = InitialLives
	r.comboTimer = 0
	r.message = ""
}

// Fail moves the machine into the error phase with a user-facing message.
// Startup failures are not retried; the user must explicitly restart.
func (r *Round) Fail(message string) {
	r.phase = PhaseError
	r.message = message
}

// RecordTargetHit awards score for a sliced target and extends the combo.
// Returns the points awarded.
func (r *Round) RecordTargetHit() int {
	if r.phase != PhasePlaying {
		return 0
	}
	points := BaseScore + ComboBonus*r.combo
	r.score += points
	r.combo++
	r.comboTimer = ComboWindow
	return points
}

// RecordDistractorHit costs a life and resets the combo immediately,
// cancelling the debounce window. At zero lives the game is over.
func (r *Round) RecordDistractorHit() {
	if r.phase != PhasePlaying {
		return
	}
	r.combo = 0
	r.comboTimer = 0
	r.lives--
	if r.lives <= 0 {
		r.lives = 0
		r.phase = PhaseGameOver
	}
}

// Advance counts down the combo debounce window. Implemented as an explicit
// per-tick countdown rather than an async timer so the whole state machine
// stays synchronous with the tick loop.
func (r *Round) Advance(dt time.Duration) {
	if r.comboTimer <= 0 {
		return
	}
	r.comboTimer -= dt
	if r.comboTimer <= 0 {
		r.comboTimer = 0
		r.combo = 0
	}
}
