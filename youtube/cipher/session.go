package cipher

import (
	"fmt"

	"github.com/ytget/sigcipher/internal/logger"
)

func cipherLog() *logger.ComponentLogger {
	return logger.WithComponent(logger.ComponentCipher)
}

// Session holds the transform plan derived from one version of the player
// script. NewSession is the only way to obtain one, so a *Session in hand is
// always initialized. After construction a Session is immutable and safe to
// share across goroutines; Decipher and Resolve allocate fresh working state
// per call.
type Session struct {
	playerURL       string
	transformObject string
	plan            Plan
}

// NewSession derives a transform plan from player script text. playerURL is
// retained for diagnostics only. The derivation short-circuits on the first
// component failure, wrapping it with the step that failed.
func NewSession(playerURL, scriptText string) (*Session, error) {
	funcName, err := locateFunction(scriptText)
	if err != nil {
		return nil, fmt.Errorf("locate transform function: %w", err)
	}

	objName, err := locateTransformObject(scriptText, funcName)
	if err != nil {
		return nil, fmt.Errorf("locate transform object: %w", err)
	}

	calls, err := parseCalls(scriptText, funcName)
	if err != nil {
		return nil, fmt.Errorf("parse transform calls: %w", err)
	}

	kinds, err := classifyTransforms(scriptText, objName)
	if err != nil {
		return nil, fmt.Errorf("classify transforms: %w", err)
	}

	plan, err := buildPlan(calls, kinds)
	if err != nil {
		return nil, fmt.Errorf("build transform plan: %w", err)
	}

	cipherLog().Info("session initialized", map[string]interface{}{
		"operations": len(plan), "object": objName,
	})

	return &Session{
		playerURL:       playerURL,
		transformObject: objName,
		plan:            plan,
	}, nil
}

// Decipher applies the session's transform plan to an encrypted signature.
func (s *Session) Decipher(signature string) string {
	return s.plan.Apply(signature)
}

// PlayerURL returns the player script URL the session was built from.
func (s *Session) PlayerURL() string { return s.playerURL }

// TransformObject returns the name of the transform object located in the
// script. Diagnostic only.
func (s *Session) TransformObject() string { return s.transformObject }

// Plan returns a copy of the derived transform plan.
func (s *Session) Plan() Plan {
	return append(Plan(nil), s.plan...)
}
