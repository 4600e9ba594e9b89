package dawgidx

import "errors"

// Sentinel errors returned by the build and load paths. Callers compare
// against these with errors.Is; wrapping (via fmt.Errorf("%w", ...)) adds
// context without hiding the underlying kind.
var (
	// ErrUnsorted is returned by DawgBuilder.Insert when a word is not
	// strictly greater than the previously inserted word.
	ErrUnsorted = errors.New("dawgidx: words must be inserted in strictly increasing order")

	// ErrEos is returned by DawgBuilder.Insert when a word contains the
	// reserved end-of-string byte 0x00.
	ErrEos = errors.New("dawgidx: word contains the reserved end-of-string byte 0x00")

	// ErrMalformed is returned by Load when the index file's header or
	// content doesn't match the expected packed layout.
	ErrMalformed = errors.New("dawgidx: malformed index file")
)
