package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"short url", "https://youtu.be/abc12345678", "abc12345678", true},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", "dQw4w9WgXcQ", true},
		{"short url with fragment", "youtu.be/dQw4w9WgXcQ#t=10", "dQw4w9WgXcQ", true},
		{"bare id", "abc12345678", "abc12345678", true},
		{"bare id with dash and underscore", "a-b_c123456", "a-b_c123456", true},
		{"bare id surrounded by spaces", "  abc12345678  ", "abc12345678", true},
		{"too short", "abc123", "", false},
		{"too long", "abc123456789", "", false},
		{"other site", "https://vimeo.com/123456789", "", false},
		{"empty", "", "", false},
		{"illegal characters", "abc!2345678", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractYouTubeID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
