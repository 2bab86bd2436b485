package practice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/abhisek/snapstudy/internal/question"
	"github.com/google/uuid"
)

// ErrEmptySelection means no saved question matched the requested tags.
// The caller shows a message and leaves any prior session untouched.
var ErrEmptySelection = errors.New("no multiple-choice questions with correct answers found for the selected tags")

// Count is the requested session size: either all eligible questions or a
// positive number of them.
type Count struct {
	All bool
	N   int
}

// ParseCount interprets user input for the session size. Anything that is
// neither "all" nor a positive integer is a validation error.
func ParseCount(s string) (Count, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "all" {
		return Count{All: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Count{}, fmt.Errorf("question count must be a positive number or %q", "all")
	}
	return Count{N: n}, nil
}

// Build filters the saved questions to the practicable ones in the selected
// tags, shuffles them uniformly, and truncates to the requested count.
// rng may be nil, in which case the global source is used; tests pass a
// seeded generator.
func Build(questions []question.SavedQuestion, selectedTags map[string]bool, count Count, rng *rand.Rand) (*Session, error) {
	if len(selectedTags) == 0 {
		return nil, ErrEmptySelection
	}

	var eligible []question.SavedQuestion
	for _, q := range questions {
		if selectedTags[q.Tag] && q.Practicable() {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrEmptySelection
	}

	shuffle(eligible, rng)

	if !count.All && count.N < len(eligible) {
		eligible = eligible[:count.N]
	}

	return newSession(uuid.NewString(), eligible), nil
}

// shuffle performs a uniform Fisher-Yates permutation.
func shuffle(qs []question.SavedQuestion, rng *rand.Rand) {
	swap := func(i, j int) { qs[i], qs[j] = qs[j], qs[i] }
	if rng != nil {
		rng.Shuffle(len(qs), swap)
		return
	}
	rand.Shuffle(len(qs), swap)
}
