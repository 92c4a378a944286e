package cipher

import (
	"regexp"
	"strconv"
	"strings"
)

// methodCall is one `obj.method(ident, n)` occurrence inside the transform
// function body, in source order.
type methodCall struct {
	object string
	method string
	arg    int
}

var callSiteRe = regexp.MustCompile(`([a-zA-Z0-9$]+)\.([a-zA-Z0-9$]+)\(\s*[a-zA-Z0-9$]+\s*,\s*(\d+)\s*\)`)

// parseCalls extracts every two-argument method invocation from the body of
// funcName, in source order. Source order is execution order of the eventual
// plan. Zero calls is a valid parse; the plan builder rejects it later.
func parseCalls(js, funcName string) ([]methodCall, error) {
	_, body, err := functionBody(js, funcName)
	if err != nil {
		return nil, err
	}
	var calls []methodCall
	for _, m := range callSiteRe.FindAllStringSubmatch(body, -1) {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		calls = append(calls, methodCall{object: m[1], method: m[2], arg: n})
	}
	return calls, nil
}

var methodDefRe = regexp.MustCompile(`([a-zA-Z0-9$]+)\s*:\s*function\s*\([^)]*\)\s*\{`)

// classifyTransforms maps each method of the transform object to an OpKind by
// sniffing the method body text. A body mentioning reverse is a Reverse, a
// body mentioning splice is a Splice, anything else is the index swap — the
// one remaining operation YouTube has ever shipped. The body is never
// executed.
func classifyTransforms(js, objName string) (map[string]OpKind, error) {
	body, err := objectBody(js, objName)
	if err != nil {
		return nil, err
	}

	kinds := make(map[string]OpKind)
	for _, loc := range methodDefRe.FindAllStringSubmatchIndex(body, -1) {
		name := body[loc[2]:loc[3]]
		end, err := matchBraces(body, loc[1]-1)
		if err != nil {
			return nil, err
		}
		methodBody := body[loc[1] : end-1]
		switch {
		case strings.Contains(methodBody, "reverse"):
			kinds[name] = OpReverse
		case strings.Contains(methodBody, "splice"):
			kinds[name] = OpSplice
		default:
			kinds[name] = OpSwap
		}
	}
	cipherLog().Debug("classified transform methods", map[string]interface{}{
		"object": objName, "methods": len(kinds),
	})
	return kinds, nil
}
