package runtime_test

import (
	"testing"

	"github.com/aretw0/dynurl/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestEscapeComponent(t *testing.T) {
	tests := map[string]string{
		"a/b c":         "a%2Fb%20c",
		"safe-_.!~*'()": "safe-_.!~*'()",
		"a+b":           "a%2Bb",
		"?&=#":          "%3F%26%3D%23",
		"ção":           "%C3%A7%C3%A3o",
		"100%":          "100%25",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, runtime.EscapeComponent(in), in)
	}
}

type label string

func (l label) String() string { return "label:" + string(l) }

type exploding struct{}

func (exploding) String() string { panic("no text") }

func TestStringify(t *testing.T) {
	assert.Equal(t, "", runtime.Stringify(nil))
	assert.Equal(t, "0", runtime.Stringify(0))
	assert.Equal(t, "false", runtime.Stringify(false))
	assert.Equal(t, "3.5", runtime.Stringify(3.5))
	assert.Equal(t, "42", runtime.Stringify(int64(42)))
	assert.Equal(t, "abc", runtime.Stringify([]byte("abc")))
	assert.Equal(t, "label:x", runtime.Stringify(label("x")))
	assert.Equal(t, "[1 2]", runtime.Stringify([]int{1, 2}))
	assert.NotPanics(t, func() { runtime.Stringify(exploding{}) })
}
