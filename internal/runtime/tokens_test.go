package runtime_test

import (
	"testing"

	"github.com/aretw0/dynurl/internal/runtime"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []domain.Token
	}{
		{"none", "/plain", nil},
		{"empty braces", "/{}", nil},
		{"single", "/u/{id}", []domain.Token{{Match: "{id}", Name: "id", Start: 3, End: 7}}},
		{"dotted", "{a.b}", []domain.Token{{Match: "{a.b}", Name: "a.b", Start: 0, End: 5}}},
		{"inner brace wins", "{a{b}", []domain.Token{{Match: "{b}", Name: "b", Start: 2, End: 5}}},
		{"spaces kept", "/{ x }", []domain.Token{{Match: "{ x }", Name: " x ", Start: 1, End: 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.ExtractTokens(tt.template))
		})
	}
}
