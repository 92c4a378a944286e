package errs

import (
	"errors"
)

var (
	// ErrPlayerURLNotFound indicates that no structural rule matched the
	// video page HTML.
	ErrPlayerURLNotFound = errors.New("player url not found")
	// ErrScriptFetchFailed indicates the player script could not be
	// downloaded.
	ErrScriptFetchFailed = errors.New("player script fetch failed")
	// ErrCipherFailed indicates the transform plan could not be derived
	// from the player script.
	ErrCipherFailed = errors.New("cipher failed")
	// ErrSessionNotInitialized indicates use of a session that was never
	// successfully built.
	ErrSessionNotInitialized = errors.New("cipher session not initialized")
)
