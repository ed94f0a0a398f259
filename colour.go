package ocmd

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/oomph-ac/ocmd/internal"
)

// formattingCodes holds every formatting code the vanilla client accepts
// after a section sign.
const formattingCodes = "0123456789abcdefghijklmnopqrstuv"

// Colourize translates '&' colour codes in the string passed into the '§'
// codes understood by the client. An '&' not followed by a valid formatting
// code is left untouched.
func Colourize(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) && strings.ContainsRune(formattingCodes, unicode.ToLower(runes[i+1])) {
			buf.WriteRune('§')
			buf.WriteRune(unicode.ToLower(runes[i+1]))
			i++
			continue
		}
		buf.WriteRune(runes[i])
	}
	return buf.String()
}
