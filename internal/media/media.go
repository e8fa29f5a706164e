package media

import (
	"path/filepath"
	"strings"
)

// Class is the media classification of a file name.
type Class int

const (
	ClassOther Class = iota
	ClassAudio
	ClassVideo
)

func (c Class) String() string {
	switch c {
	case ClassAudio:
		return "audio"
	case ClassVideo:
		return "video"
	default:
		return "other"
	}
}

var audioExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".aac":  true,
	".wma":  true,
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
	".flv":  true,
}

// Classify maps a file name to its media class by case-insensitive
// extension lookup.
func Classify(name string) Class {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case audioExts[ext]:
		return ClassAudio
	case videoExts[ext]:
		return ClassVideo
	default:
		return ClassOther
	}
}

// Stem returns the file's base name without its extension.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
