// Package player locates the player script URL inside a video page.
package player

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/ytget/sigcipher/internal/logger"
)

const originBase = "https://www.youtube.com"

// ErrURLNotFound is returned when no structural rule matches the page HTML.
var ErrURLNotFound = errors.New("player url not found in page")

var (
	jsURLRe        = regexp.MustCompile(`"jsUrl"\s*:\s*"([^"]+)"`)
	playerJSURLRe  = regexp.MustCompile(`"PLAYER_JS_URL"\s*:\s*"([^"]+)"`)
	scriptNameAttr = "player_ias"
)

// rule is one structural match over the page text. Rules run in priority
// order; the first match wins.
type rule struct {
	name    string
	extract func(pageHTML string) (string, bool)
}

var rules = []rule{
	{"jsUrl literal", matchRegex(jsURLRe)},
	{"PLAYER_JS_URL literal", matchRegex(playerJSURLRe)},
	{"player_ias script tag", matchScriptTag},
}

// Locate extracts the player script URL from page HTML. Matched values have
// escaped slashes unescaped; path-relative values are qualified against the
// platform origin.
func Locate(pageHTML string) (string, error) {
	for _, r := range rules {
		raw, ok := r.extract(pageHTML)
		if !ok {
			continue
		}
		u := normalize(raw)
		logger.WithComponent(logger.ComponentPlayer).Info("found player url",
			map[string]interface{}{"rule": r.name, "url": u})
		return u, nil
	}
	return "", ErrURLNotFound
}

func matchRegex(re *regexp.Regexp) func(string) (string, bool) {
	return func(pageHTML string) (string, bool) {
		m := re.FindStringSubmatch(pageHTML)
		if m == nil || m[1] == "" {
			return "", false
		}
		return m[1], true
	}
}

// matchScriptTag walks the parsed document for a <script> element whose name
// attribute identifies the player bundle.
func matchScriptTag(pageHTML string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", false
	}
	var walk func(*html.Node) (string, bool)
	walk = func(n *html.Node) (string, bool) {
		if n.Type == html.ElementNode && n.Data == "script" {
			var src, name string
			for _, a := range n.Attr {
				switch a.Key {
				case "src":
					src = a.Val
				case "name":
					name = a.Val
				}
			}
			if src != "" && strings.HasPrefix(name, scriptNameAttr) {
				return src, true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if src, ok := walk(c); ok {
				return src, true
			}
		}
		return "", false
	}
	return walk(doc)
}

func normalize(raw string) string {
	u := strings.ReplaceAll(raw, `\/`, `/`)
	if strings.HasPrefix(u, "/") {
		return originBase + u
	}
	return u
}
