// Package content fetches and validates themed level definitions from the
// external content service.
package content

import (
	"errors"
	"fmt"
)

// Vocabulary size limits imposed by the content contract.
const (
	MinVocabulary = 8
	MaxVocabulary = 10
)

// ErrContentUnavailable is returned when the content service is unreachable
// or its response is empty or malformed.
var ErrContentUnavailable = errors.New("level content unavailable")

// Level defines one playthrough's theme and vocabulary. Immutable for the
// duration of a playthrough.
type Level struct {
	Theme       string   `json:"themeName"`
	Instruction string   `json:"instruction"`
	Targets     []string `json:"targets"`
	Distractors []string `json:"distractors"`
}

// Validate checks the level against the content-service schema: non-empty
// theme and instruction, and 8 to 10 entries in each vocabulary list.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("nil level")
	}
	if l.Theme == "" {
		return fmt.Errorf("missing theme name")
	}
	if l.Instruction == "" {
		return fmt.Errorf("missing instruction")
	}
	if n := len(l.Targets); n < MinVocabulary || n > MaxVocabulary {
		return fmt.Errorf("targets: got %d entries, want %d..%d", n, MinVocabulary, MaxVocabulary)
	}
	if n := len(l.Distractors); n < MinVocabulary || n > MaxVocabulary {
		return fmt.Errorf("distractors: got %d entries, want %d..%d", n, MinVocabulary, MaxVocabulary)
	}
	for _, v := range append(append([]string{}, l.Targets...), l.Distractors...) {
		if v == "" {
			return fmt.Errorf("empty vocabulary entry")
		}
	}
	return nil
}
