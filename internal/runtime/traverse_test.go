package runtime_test

import (
	"testing"

	"github.com/aretw0/dynurl/internal/runtime"
	"github.com/stretchr/testify/assert"
)

type Embedded struct {
	Inner string
}

type tagged struct {
	Embedded
	ByJSON     string `json:"by_json,omitempty"`
	ByMS       string `mapstructure:"by_ms"`
	Hidden     string `json:"-"`
	Plain      int
	unexported string
}

type lookupOnly struct{}

func (lookupOnly) Field(name string) (any, bool) {
	if name == "dynamic" {
		return "yes", true
	}
	return nil, false
}

func TestMember(t *testing.T) {
	v := tagged{
		Embedded:   Embedded{Inner: "promoted"},
		ByJSON:     "j",
		ByMS:       "m",
		Hidden:     "h",
		Plain:      1,
		unexported: "u",
	}

	tests := []struct {
		name   string
		value  any
		member string
		want   any
		ok     bool
	}{
		{"json tag", v, "by_json", "j", true},
		{"go name ignored when tagged", v, "ByJSON", nil, false},
		{"mapstructure tag", v, "by_ms", "m", true},
		{"dash tag hides field", v, "Hidden", nil, false},
		{"untagged field", &v, "Plain", 1, true},
		{"promoted field not owned", v, "Inner", nil, false},
		{"embedded struct itself", v, "Embedded", nil, false},
		{"unexported", v, "unexported", nil, false},
		{"map", map[string]int{"a": 1}, "a", 1, true},
		{"typed string map", map[label]string{"k": "v"}, "k", "v", true},
		{"non string keys", map[int]string{1: "v"}, "1", nil, false},
		{"slice", []string{"a", "b"}, "1", "b", true},
		{"array out of range", [2]int{}, "2", nil, false},
		{"negative index", []string{"a"}, "-1", nil, false},
		{"field lookup", lookupOnly{}, "dynamic", "yes", true},
		{"field lookup miss", lookupOnly{}, "Field", nil, false},
		{"scalar", 5, "x", nil, false},
		{"nil map", map[string]any(nil), "x", nil, false},
		{"nil", nil, "x", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := runtime.Member(tt.value, tt.member)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
