package runtime

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// componentUnescaper restores the characters URI-component encoding leaves alone
// but url.QueryEscape escapes anyway.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s as a single URI component.
// Only A-Z a-z 0-9 - _ . ! ~ * ' ( ) are left as-is; space becomes %20.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Stringify converts a resolved value to its text form.
// nil becomes the empty string; numbers and booleans use their canonical spelling.
func Stringify(v any) (text string) {
	defer func() {
		// fmt reports a panicking String method inline instead of propagating it.
		if p := recover(); p != nil {
			text = fmt.Sprint(v)
		}
	}()
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
