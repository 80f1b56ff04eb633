package slug

import (
	"iter"
	"strconv"
	"strings"
)

// DefaultSequenceStart is the first numeric suffix tried after the bare base.
const DefaultSequenceStart = 2

// SequenceOption configures candidate sequencing.
type SequenceOption func(*sequenceOptions)

type sequenceOptions struct {
	separator string
	start     int
	skipBase  bool
}

func defaultSequenceOptions() *sequenceOptions {
	return &sequenceOptions{
		separator: "-",
		start:     DefaultSequenceStart,
	}
}

// SequenceSeparator sets the string placed between base and counter.
// Default: "-".
func SequenceSeparator(sep string) SequenceOption {
	return func(o *sequenceOptions) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// StartAt sets the first numeric suffix. Values below 1 are ignored.
// Default: 2.
func StartAt(n int) SequenceOption {
	return func(o *sequenceOptions) {
		if n > 0 {
			o.start = n
		}
	}
}

// SkipBase omits the bare base from the sequence, starting with the first suffixed candidate.
func SkipBase() SequenceOption {
	return func(o *sequenceOptions) {
		o.skipBase = true
	}
}

// Candidates returns the unbounded sequence of slugs to try for base:
// base, base-2, base-3, ... Every range over the result starts from the beginning.
// An empty base yields nothing.
//
// Example:
//
//	for c := range slug.Candidates("juan-fulano") {
//		if free(c) {
//			return c
//		}
//	}
func Candidates(base string, opts ...SequenceOption) iter.Seq[string] {
	o := defaultSequenceOptions()
	for _, opt := range opts {
		opt(o)
	}

	return func(yield func(string) bool) {
		if base == "" {
			return
		}
		if !o.skipBase && !yield(base) {
			return
		}
		for n := o.start; n > 0; n++ {
			if !yield(base + o.separator + strconv.Itoa(n)) {
				return
			}
		}
	}
}

// IsSequenceOf reports whether s is base itself or one of its numbered candidates.
func IsSequenceOf(s, base string, opts ...SequenceOption) bool {
	if base == "" {
		return false
	}
	if s == base {
		return true
	}

	o := defaultSequenceOptions()
	for _, opt := range opts {
		opt(o)
	}

	rest, ok := strings.CutPrefix(s, base+o.separator)
	if !ok || rest == "" || rest[0] == '0' {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(rest)
	return err == nil && n >= o.start
}
