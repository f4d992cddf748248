package gateways

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobMatcher_Match(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{"double star crosses segments", "**/hibernate-core-1.2.3.jar", "my-app.zip::lib/hibernate-core-1.2.3.jar", true},
		{"double star deep", "**/hibernate-core-*.jar", "my-app.zip::a/b/c/hibernate-core-1.2.3.jar", true},
		{"single star stays in segment", "*.jar", "my-app.zip::lib/x.jar", false},
		{"single star with container", "*::lib/*.jar", "my-app.zip::lib/x.jar", true},
		{"question mark", "my-app.zip::lib/?.jar", "my-app.zip::lib/x.jar", true},
		{"question mark needs one char", "my-app.zip::lib/?.jar", "my-app.zip::lib/xy.jar", false},
		{"literal", "my-app.zip::lib/x.jar", "my-app.zip::lib/x.jar", true},
		{"no match", "**/other.jar", "my-app.zip::lib/x.jar", false},
		{"bad pattern never matches", "lib/[x.jar", "lib/[x.jar", false},
	}

	matcher := NewGlobMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.pattern, tt.candidate))
		})
	}
}

func TestGlobMatcher_Validate(t *testing.T) {
	matcher := NewGlobMatcher()

	assert.NoError(t, matcher.Validate("**/*.jar"))
	assert.NoError(t, matcher.Validate("my-app.zip::lib/?.jar"))
	assert.Error(t, matcher.Validate("lib/[x.jar"))
}
