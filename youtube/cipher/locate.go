package cipher

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Standard-library identifiers that call-site patterns can accidentally
// capture. Never valid transform-function candidates.
var builtinNames = map[string]bool{
	"decodeURIComponent": true,
	"encodeURIComponent": true,
	"parseInt":           true,
	"parseFloat":         true,
}

// funcNameRule is one historical shape of the call site that invokes the
// transform function. Rules are evaluated in order; the first candidate that
// also has a definition site wins.
type funcNameRule struct {
	name string
	re   *regexp2.Regexp
}

// regexp2 rather than stdlib regexp: the split/join rule needs a
// backreference.
var funcNameRules = []funcNameRule{
	{"sig property guard", regexp2.MustCompile(`\.sig\|\|([a-zA-Z0-9$]+)\(`, 0)},
	{"guarded setter", regexp2.MustCompile(`\bc\s*&&\s*[adf]\.set\([^,]+\s*,\s*encodeURIComponent\s*\(\s*([a-zA-Z0-9$]+)\(`, 0)},
	{"generic guarded setter", regexp2.MustCompile(`\b[a-zA-Z0-9]+\s*&&\s*[a-zA-Z0-9]+\.set\([^,]+\s*,\s*encodeURIComponent\s*\(\s*([a-zA-Z0-9$]+)\(`, 0)},
	{"split/join definition", regexp2.MustCompile(`([a-zA-Z0-9$]{2,})\s*=\s*function\(\s*[a-zA-Z]\s*\)\s*\{\s*[a-zA-Z]\s*=\s*\1\.split\(""\)`, 0)},
	{"trailing transform call", regexp2.MustCompile(`,([a-zA-Z0-9$]{2,})\([a-zA-Z],\d+\);`, 0)},
}

// locateFunction determines the name of the primary signature-transform
// function. A candidate captured by a rule is accepted only if the script
// also contains a definition site for that exact name.
func locateFunction(js string) (string, error) {
	log := cipherLog()
	for _, rule := range funcNameRules {
		m, err := rule.re.FindStringMatch(js)
		if err != nil {
			continue
		}
		for m != nil {
			name := m.GroupByNumber(1).String()
			if !builtinNames[name] && hasDefinition(js, name) {
				log.Info("found transform function", map[string]interface{}{
					"name": name, "rule": rule.name,
				})
				return name, nil
			}
			m, _ = rule.re.FindNextMatch(m)
		}
	}
	return "", NewError(ErrCodeFunctionNotFound,
		"no transform function candidate with a definition site")
}

// First two-argument method call inside the transform function body; the
// receiver is the transform object.
var transformCallRe = regexp.MustCompile(`([a-zA-Z0-9$]+)\.[a-zA-Z0-9$]+\(\s*[a-zA-Z0-9$]+\s*,\s*\d+\s*\)`)

// locateTransformObject determines the name of the helper object whose
// methods perform the array mutations.
func locateTransformObject(js, funcName string) (string, error) {
	_, body, err := functionBody(js, funcName)
	if err != nil {
		return "", err
	}
	m := transformCallRe.FindStringSubmatch(body)
	if m == nil {
		return "", NewError(ErrCodeTransformObjNotFound,
			fmt.Sprintf("no two-argument method call in body of %q", funcName))
	}
	cipherLog().Info("found transform object", map[string]interface{}{"name": m[1]})
	return m[1], nil
}
