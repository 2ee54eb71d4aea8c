// Package snippet relates search snippets back to the message bodies they
// were cut from.
package snippet

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/colonyops/msgview/internal/core/body"
)

const (
	// HighlightLeft opens a highlighted run in a search snippet.
	HighlightLeft = "<<left>>"
	// HighlightRight closes a highlighted run in a search snippet.
	HighlightRight = "<<right>>"
)

var ellipses = []string{"...", "…"}

var (
	// ErrInconsistent is wrapped by every fault caused by a snippet that
	// does not agree with its body or ranges.
	ErrInconsistent = errors.New("snippet inconsistent with body")
	// ErrSnippetNotFound means the snippet text does not occur in the body.
	ErrSnippetNotFound = fmt.Errorf("%w: snippet not found", ErrInconsistent)
	// ErrMarkerWithoutRange means the snippet has more mention markers than
	// there are ranges to pair them with.
	ErrMarkerWithoutRange = fmt.Errorf("%w: marker without range", ErrInconsistent)
)

// Remap rewrites the mention ranges of a full body so their starts point
// at the mention markers inside snippet. Offsets are UTF-16 code units.
//
// Faults do not stop the remap. The best-effort ranges are returned along
// with a joined error wrapping ErrInconsistent.
func Remap(snippet, text string, ranges []body.Range) ([]body.Range, error) {
	if len(ranges) == 0 {
		return []body.Range{}, nil
	}

	var faults []error

	core := Core(snippet)
	matchIndex := 0
	if idx := strings.Index(text, core); idx >= 0 {
		matchIndex = body.ByteToUTF16(text, idx)
	} else {
		faults = append(faults, fmt.Errorf("%w: %q", ErrSnippetNotFound, core))
	}

	delta := matchIndex + body.UTF16Len(snippet)
	kept := make([]body.Range, 0, len(ranges))
	for _, r := range ranges {
		if r.IsMention() && r.Start < delta {
			kept = append(kept, r)
		}
	}

	out := make([]body.Range, 0, len(kept))
	markers, offset := 0, 0
	for _, r := range snippet {
		if r == body.Placeholder {
			if markers < len(kept) {
				remapped := kept[markers]
				remapped.Start = offset
				out = append(out, remapped)
			} else {
				faults = append(faults, fmt.Errorf("%w: marker %d of %d ranges", ErrMarkerWithoutRange, markers, len(kept)))
			}
			markers++
		}
		offset += max(utf16.RuneLen(r), 1)
	}

	return out, errors.Join(faults...)
}

// Core strips the highlight sentinels and one boundary unit from each end
// of a snippet: an ellipsis when present, otherwise a single rune.
func Core(snippet string) string {
	s := strings.ReplaceAll(snippet, HighlightLeft, "")
	s = strings.ReplaceAll(s, HighlightRight, "")
	s = trimLeading(s)
	s = trimTrailing(s)
	return s
}

func trimLeading(s string) string {
	for _, e := range ellipses {
		if strings.HasPrefix(s, e) {
			return s[len(e):]
		}
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}

func trimTrailing(s string) string {
	for _, e := range ellipses {
		if strings.HasSuffix(s, e) {
			return s[:len(s)-len(e)]
		}
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
