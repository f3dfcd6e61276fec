package align

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions spec.md §7 names. Callers should
// use errors.Is against these rather than comparing formatted strings.
var (
	ErrEmptyAlignment        = errors.New("align: at least one sequence must be provided")
	ErrInconsistentLengths   = errors.New("align: sequences are not of consistent length")
	ErrWeightCountMismatch   = errors.New("align: cached weight count does not match sequence count")
	ErrPositionCountMismatch = errors.New("align: cached position count does not match column count")
	ErrMissingSequence       = errors.New("align: header with no following sequence")
	ErrSequenceWithoutName   = errors.New("align: sequence line with no preceding header")
	ErrNotReadable           = errors.New("align: input could not be read")
	ErrInvalidCacheFormat    = errors.New("align: cache file is not valid JSON in the expected shape")
	ErrMismatchedCacheVersion = errors.New("align: cache file version does not match this build")
	ErrAlphabetMismatch      = errors.New("align: alphabets do not match or alphabet name is not recognised")
	ErrUnknownReferenceName  = errors.New("align: reference sequence name not found in alignment")
	ErrUnhandledAlphabet     = errors.New("align: internal: alphabet not handled by this code path")
)

// NewInconsistentLengthsError reports the offending sequence name.
func NewInconsistentLengthsError(name string) error {
	return fmt.Errorf("%w: %q", ErrInconsistentLengths, name)
}

// NewMissingSequenceError reports the header line found with nothing
// following it.
func NewMissingSequenceError(header string) error {
	return fmt.Errorf("%w: %q", ErrMissingSequence, header)
}

// NewSequenceWithoutNameError reports the orphan sequence line.
func NewSequenceWithoutNameError(line string) error {
	return fmt.Errorf("%w: %q", ErrSequenceWithoutName, line)
}

// NewNotReadableError wraps the underlying I/O error.
func NewNotReadableError(cause error) error {
	return fmt.Errorf("%w: %v", ErrNotReadable, cause)
}

// NewInvalidCacheFormatError wraps the underlying decode error.
func NewInvalidCacheFormatError(cause error) error {
	return fmt.Errorf("%w: %v", ErrInvalidCacheFormat, cause)
}

// NewMismatchedCacheVersionError reports the version found versus the
// version expected.
func NewMismatchedCacheVersionError(found, expected string) error {
	return fmt.Errorf("%w: found %q, expected %q", ErrMismatchedCacheVersion, found, expected)
}

// NewAlphabetMismatchError reports the unrecognised alphabet name.
func NewAlphabetMismatchError(name string) error {
	return fmt.Errorf("%w: %q", ErrAlphabetMismatch, name)
}

// NewUnknownReferenceNameError reports the reference name that was not
// found.
func NewUnknownReferenceNameError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownReferenceName, name)
}

// NewUnhandledAlphabetError reports the alphabet value an exhaustive
// switch failed to handle. Its occurrence is a bug, not an input error;
// callers that can't usefully recover from it should let it panic.
func NewUnhandledAlphabetError(a Alphabet) error {
	return fmt.Errorf("%w: %v", ErrUnhandledAlphabet, a)
}

// NewWeightCountMismatchError reports the found versus expected counts.
func NewWeightCountMismatchError(found, expected int) error {
	return fmt.Errorf("%w: found %d, expected %d", ErrWeightCountMismatch, found, expected)
}

// NewPositionCountMismatchError reports the found versus expected
// counts.
func NewPositionCountMismatchError(found, expected int) error {
	return fmt.Errorf("%w: found %d, expected %d", ErrPositionCountMismatch, found, expected)
}
