package cipher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dop251/goja"
)

// matchBraces scans js from the opening brace at open and returns the index
// one past the matching closing brace. Braces inside string literals are
// ignored; escaped quote characters do not terminate a literal.
func matchBraces(js string, open int) (int, error) {
	if open >= len(js) || js[open] != '{' {
		return 0, NewError(ErrCodeBodyUnparsable, "no opening brace at extraction start")
	}
	var strChar byte
	depth := 1
	pos := open + 1
	for ; depth > 0; pos++ {
		if pos >= len(js) {
			return 0, NewError(ErrCodeBodyUnparsable, "unterminated brace block")
		}
		switch b := js[pos]; b {
		case '{':
			if strChar == 0 {
				depth++
			}
		case '}':
			if strChar == 0 {
				depth--
			}
		case '`', '"', '\'':
			if pos > 1 && js[pos-1] == '\\' && js[pos-2] != '\\' {
				continue
			}
			if strChar == 0 {
				strChar = b
			} else if strChar == b {
				strChar = 0
			}
		}
	}
	return pos, nil
}

// functionBody extracts the parameter list and body of a named function,
// supporting both `name = function(a){...}` and `function name(a){...}`
// declaration shapes. The extracted body is validated as standalone function
// syntax so that a garbled brace scan cannot leak downstream.
func functionBody(js, name string) (params, body string, err error) {
	defRes := []*regexp.Regexp{
		regexp.MustCompile(`(?:^|[^a-zA-Z0-9$_])` + regexp.QuoteMeta(name) + `\s*=\s*function\s*\(([^)]*)\)\s*\{`),
		regexp.MustCompile(`function\s+` + regexp.QuoteMeta(name) + `\s*\(([^)]*)\)\s*\{`),
	}
	for _, re := range defRes {
		loc := re.FindStringSubmatchIndex(js)
		if loc == nil {
			continue
		}
		params = js[loc[2]:loc[3]]
		open := loc[1] - 1
		end, err := matchBraces(js, open)
		if err != nil {
			return "", "", err
		}
		body = js[open+1 : end-1]
		if err := checkFunctionSyntax(name, params, body); err != nil {
			return "", "", err
		}
		return params, body, nil
	}
	return "", "", NewError(ErrCodeBodyUnparsable,
		fmt.Sprintf("no definition found for function %q", name))
}

// checkFunctionSyntax compiles the extracted snippet as an anonymous function
// expression. Compilation only; nothing is ever executed.
func checkFunctionSyntax(name, params, body string) error {
	src := "(function(" + params + "){" + body + "})"
	if _, err := goja.Compile(name, src, false); err != nil {
		return NewError(ErrCodeBodyUnparsable,
			fmt.Sprintf("extracted body of %q is not valid function syntax", name),
			err.Error())
	}
	return nil
}

// objectBody extracts the literal body of `var name = {...}` or bare
// `name = {...}`. Balanced-brace matching is required here: method bodies
// nest inside the literal.
func objectBody(js, name string) (string, error) {
	quoted := regexp.QuoteMeta(name)
	defRes := []*regexp.Regexp{
		regexp.MustCompile(`var\s+` + quoted + `\s*=\s*\{`),
		regexp.MustCompile(quoted + `\s*=\s*\{`),
	}
	for _, re := range defRes {
		loc := re.FindStringIndex(js)
		if loc == nil {
			continue
		}
		open := loc[1] - 1
		end, err := matchBraces(js, open)
		if err != nil {
			return "", err
		}
		return js[open+1 : end-1], nil
	}
	return "", NewError(ErrCodeTransformObjNotFound,
		fmt.Sprintf("no literal definition found for object %q", name))
}

// hasDefinition reports whether js contains a definition site for name in
// either declaration shape.
func hasDefinition(js, name string) bool {
	if strings.Contains(js, name+"=function") {
		return true
	}
	quoted := regexp.QuoteMeta(name)
	re := regexp.MustCompile(quoted + `\s*=\s*function|function\s+` + quoted + `\s*\(`)
	return re.MatchString(js)
}
