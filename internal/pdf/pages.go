// Package pdf estimates page counts from raw PDF bytes without parsing the
// document structure.
package pdf

import (
	"regexp"

	"golang.org/x/text/encoding/charmap"
)

// pageMarker matches a page object's type entry. The trailing word boundary
// keeps "/Type /Pages" (the page tree node) out of the count. Whitespace is
// the Latin-1 set: tab, LF, VT, FF, CR, space and NBSP.
var pageMarker = regexp.MustCompile(`/Type[\t\n\v\f\r \x{00A0}]*/Page\b`)

// CountPages counts non-overlapping page markers in data. It never returns
// less than 1: files whose page objects sit in compressed object streams have
// no visible markers and are billed as a single page.
func CountPages(data []byte) int {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		text = data
	}

	n := len(pageMarker.FindAllIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}
