package util

import (
	"regexp"
	"strings"
)

var (
	youtubeURLRegex = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)
	youtubeIDRegex  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractYouTubeID returns the canonical video ID for a watch, short or embed
// URL, or for a bare 11 character ID. ok is false when neither form matches.
func ExtractYouTubeID(ref string) (id string, ok bool) {
	ref = strings.TrimSpace(ref)
	if m := youtubeURLRegex.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}
	if youtubeIDRegex.MatchString(ref) {
		return ref, true
	}
	return "", false
}
