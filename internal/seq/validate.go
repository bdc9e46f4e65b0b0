package seq

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failure kinds. Use errors.Is to test which rule a sequence broke.
var (
	ErrEmptySequence         = errors.New("empty sequence")
	ErrSequenceTooLong       = errors.New("sequence too long")
	ErrInvalidCharacters     = errors.New("invalid characters")
	ErrNoSequencesProvided   = errors.New("no sequences provided")
	ErrInsufficientSequences = errors.New("insufficient sequences")
)

// ValidationError reports why a named sequence failed validation.
type ValidationError struct {
	Name    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a normalized sequence against the length bounds and the
// alphabet of the given type. Analytics functions assume their input has
// passed Validate; run it before any comparison or alignment.
func Validate(sequence, name string, t Type) error {
	if len(sequence) == 0 {
		return &ValidationError{
			Name:    name,
			Message: "sequence is empty",
			Err:     ErrEmptySequence,
		}
	}

	if len(sequence) > MaxSequenceLength {
		return &ValidationError{
			Name:    name,
			Message: fmt.Sprintf("sequence has %d characters, maximum is %d", len(sequence), MaxSequenceLength),
			Err:     ErrSequenceTooLong,
		}
	}

	alphabet := t.Alphabet()
	var invalid []byte
	seen := make(map[byte]bool)
	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if !alphabet[c] && !seen[c] {
			seen[c] = true
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		chars := make([]string, len(invalid))
		for i, c := range invalid {
			chars[i] = string(c)
		}
		return &ValidationError{
			Name:    name,
			Message: fmt.Sprintf("invalid %s characters: %s", t, strings.Join(chars, ", ")),
			Err:     ErrInvalidCharacters,
		}
	}

	return nil
}

// ValidateAll validates every entry, failing fast on the first offender so
// no partial comparison is computed from a bad set.
func ValidateAll(entries []Entry, t Type) error {
	if len(entries) == 0 {
		return &ValidationError{
			Name:    "input",
			Message: "no sequences provided",
			Err:     ErrNoSequencesProvided,
		}
	}
	for _, e := range entries {
		if err := Validate(e.Sequence, e.Header, t); err != nil {
			return err
		}
	}
	return nil
}
