// Package sigcipher resolves signature-protected media URLs.
//
// Given the HTML of a video page, Resolver locates the player script the
// page references, fetches it, and derives a transform plan from its
// obfuscated source without ever executing it. The resulting Session
// deciphers per-format cipher blobs into working media URLs.
package sigcipher

import (
	"fmt"

	"github.com/ytget/sigcipher/client"
	"github.com/ytget/sigcipher/errs"
	"github.com/ytget/sigcipher/youtube/cipher"
	"github.com/ytget/sigcipher/youtube/player"
)

// Session is an initialized cipher session ready to decipher signatures.
type Session = cipher.Session

// Resolver is the high-level entry point tying page parsing, script fetching
// and session building together.
type Resolver struct {
	client *client.Client
}

// New creates a Resolver with a default HTTP client.
func New() *Resolver {
	return &Resolver{client: client.New()}
}

// WithClient sets a custom fetch client to be used for script downloads.
func (r *Resolver) WithClient(c *client.Client) *Resolver {
	r.client = c
	return r
}

// NewSession locates the player script referenced by the page, fetches it,
// and derives the transform plan. One session serves one player script
// version; callers that see many pages referencing the same script URL may
// reuse the session across all of them.
func (r *Resolver) NewSession(pageHTML string) (*cipher.Session, error) {
	playerURL, err := player.Locate(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPlayerURLNotFound, err)
	}

	scriptText, err := r.client.FetchText(playerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrScriptFetchFailed, err)
	}

	return NewSessionFromScript(playerURL, scriptText)
}

// LocatePlayerURL extracts the player script URL from page HTML without
// fetching anything.
func (r *Resolver) LocatePlayerURL(pageHTML string) (string, error) {
	playerURL, err := player.Locate(pageHTML)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrPlayerURLNotFound, err)
	}
	return playerURL, nil
}

// NewSessionFromScript builds a session from already-fetched script text.
// This is the pure path: no network access happens.
func NewSessionFromScript(playerURL, scriptText string) (*cipher.Session, error) {
	sess, err := cipher.NewSession(playerURL, scriptText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCipherFailed, err)
	}
	return sess, nil
}

// ResolveFormatURL resolves one raw cipher blob into a media URL using an
// initialized session.
func ResolveFormatURL(sess *cipher.Session, raw string) (string, error) {
	u, err := cipher.Resolve(raw, sess)
	if err != nil {
		if cipher.IsSessionNotInitialized(err) {
			return "", fmt.Errorf("%w: %v", errs.ErrSessionNotInitialized, err)
		}
		return "", err
	}
	return u, nil
}
