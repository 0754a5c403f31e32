package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://push.example:9091/metrics/job/travis", "https://push.example:9091/***"},
		{"https://api.travis-ci.com/repo/a%2Fb?token=x", "https://api.travis-ci.com/***"},
		{"not a url", "***invalid-url***"},
		{"", "***invalid-url***"},
		{"://bad", "***invalid-url***"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskURL(tt.in))
		})
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", MaskToken(""))
	assert.Equal(t, "***", MaskToken("short"))
	assert.Equal(t, "abcd****", MaskToken("abcdefghijklmnop"))
}
