package content

import "context"

// Static serves a single built-in level, used for offline play and tests.
type Static struct {
	Level Level
}

// DefaultStatic returns a Static provider with the built-in fruit theme.
func DefaultStatic() *Static {
	return &Static{Level: Level{
		Theme:       "Fruit Stand",
		Instruction: "Slice only the fruits!",
		Targets: []string{
			"apple", "banana", "mango", "peach", "grape",
			"cherry", "melon", "papaya",
		},
		Distractors: []string{
			"carrot", "potato", "onion", "pebble", "sponge",
			"teapot", "wrench", "cactus",
		},
	}}
}

// FetchLevel returns a copy of the built-in level.
func (s *Static) FetchLevel(ctx context.Context) (*Level, error) {
	level := s.Level
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}
