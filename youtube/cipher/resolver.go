package cipher

import (
	"net/url"
	"strings"
)

const defaultSignatureParam = "signature"

// cipherData is the parsed view of a raw cipher blob: either an
// already-usable URL or a parameter set.
type cipherData struct {
	direct   string
	baseURL  string
	sigParam string
	encSig   string
	hasSig   bool
	hasURL   bool
}

func parseCipherData(raw string) (cipherData, error) {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return cipherData{direct: raw}, nil
	}

	var cd cipherData
	for _, kv := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return cipherData{}, NewError(ErrCodeCipherDataInvalid,
				"percent-decoding failed", map[string]any{"param": key, "cause": err.Error()})
		}
		switch key {
		case "url":
			cd.baseURL = decoded
			cd.hasURL = true
		case "s":
			cd.encSig = decoded
			cd.hasSig = true
		case "sp":
			cd.sigParam = decoded
		}
	}
	return cd, nil
}

// Resolve turns a raw cipher blob into a usable media URL. Pre-resolved URLs
// pass through unchanged. A blob carrying an `s` parameter has its signature
// deciphered with the session's plan and appended to the `url` parameter
// under the name given by `sp` (default "signature"). A blob with only a
// `url` parameter returns that URL; a blob with neither returns the raw
// input as a best-effort fallback.
func Resolve(raw string, s *Session) (string, error) {
	if s == nil {
		return "", NewError(ErrCodeSessionNotInitialized,
			"resolve called without an initialized session")
	}

	cd, err := parseCipherData(raw)
	if err != nil {
		return "", err
	}

	if cd.direct != "" {
		return cd.direct, nil
	}

	if cd.hasSig {
		sig := s.plan.Apply(cd.encSig)
		param := cd.sigParam
		if param == "" {
			param = defaultSignatureParam
		}
		sep := "?"
		if strings.Contains(cd.baseURL, "?") {
			sep = "&"
		}
		cipherLog().Debug("deciphered format url", map[string]interface{}{"sp": param})
		return cd.baseURL + sep + param + "=" + sig, nil
	}

	if cd.hasURL {
		return cd.baseURL, nil
	}

	return raw, nil
}

// Resolve is the method form of the package-level Resolve. Safe on a nil
// receiver, which reports SESSION_NOT_INITIALIZED.
func (s *Session) Resolve(raw string) (string, error) {
	return Resolve(raw, s)
}
