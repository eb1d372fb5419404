// Package pdfname derives a download filename for a PDF export from the
// page it was rendered from.
package pdfname

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Fallback is returned whenever the input cannot be interpreted.
const Fallback = "document.pdf"

// FromPath maps a page path to a filename:
//
//	/            → home.pdf
//	/users       → user-list.pdf
//	/X           → X.pdf
//	/user/42     → user-42.pdf
//	/a/b         → a-b.pdf
//	/a/b/c       → b-c.pdf (last two segments)
func FromPath(path string) string {
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(strings.TrimSuffix(path, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	switch len(segments) {
	case 0:
		return "home.pdf"
	case 1:
		if strings.EqualFold(segments[0], "users") {
			return "user-list.pdf"
		}
		return segments[0] + ".pdf"
	case 2:
		if strings.EqualFold(segments[0], "user") {
			if id, err := strconv.Atoi(segments[1]); err == nil {
				return fmt.Sprintf("user-%d.pdf", id)
			}
		}
		return segments[0] + "-" + segments[1] + ".pdf"
	default:
		n := len(segments)
		return segments[n-2] + "-" + segments[n-1] + ".pdf"
	}
}

// FromURL applies FromPath to the path of rawURL, returning Fallback when
// the URL does not parse.
func FromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Fallback
	}
	return FromPath(u.Path)
}
