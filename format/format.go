// Package format re-formats channel content and applies a formatter to a
// whole snapshot under an explicit failure policy.
package format

import (
	stderrors "errors"
	"fmt"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
)

// Formatter reformats text written in lang. It returns an error when the
// text is not valid for that language.
type Formatter interface {
	Format(text string, lang models.Language) (string, error)
}

// Func adapts a function to Formatter.
type Func func(text string, lang models.Language) (string, error)

func (f Func) Format(text string, lang models.Language) (string, error) {
	return f(text, lang)
}

// Policy decides what happens to the other channels when one fails.
type Policy string

const (
	// AllOrNothing leaves every channel untouched if any channel fails.
	AllOrNothing Policy = "all-or-nothing"
	// PerChannel keeps the failed channels' text and formats the rest.
	PerChannel Policy = "per-channel"
)

// ParsePolicy accepts a policy name; the empty string selects AllOrNothing.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", AllOrNothing:
		return AllOrNothing, nil
	case PerChannel:
		return PerChannel, nil
	}
	return "", fmt.Errorf("unknown format policy %q", name)
}

// Apply formats every channel of s. On failure under AllOrNothing the
// original snapshot is returned together with the error; under PerChannel
// the returned snapshot holds every channel that formatted successfully.
// Each channel failure is a FORMAT_FAILED error; several are joined.
func Apply(s models.Snapshot, f Formatter, policy Policy) (models.Snapshot, error) {
	out := s
	var errs []error
	for _, c := range models.Channels {
		formatted, err := f.Format(s.Get(c), c.Language())
		if err != nil {
			errs = append(errs, errors.FormatFailed(c.Label(), err))
			continue
		}
		out = out.With(c, formatted)
	}

	if len(errs) == 0 {
		return out, nil
	}
	err := stderrors.Join(errs...)
	if policy == PerChannel {
		return out, err
	}
	return s, err
}
