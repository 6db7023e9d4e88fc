package domain

const (
	DefaultOctave         = 4
	DefaultNoteDurationMs = 500
)

type NoteInfo struct {
	Note      string   `json:"note"`
	Frequency *float64 `json:"frequency"`
	Available bool     `json:"available"`
}

type PlayNoteRequest struct {
	Note     string `json:"note"`
	Octave   *int   `json:"octave,omitempty"`
	Duration *int   `json:"duration,omitempty"`
}

type PlayStatus string

const (
	PlayStatusPlaying PlayStatus = "playing"
	PlayStatusError   PlayStatus = "error"
)

type PlayNoteResponse struct {
	Status   PlayStatus `json:"status"`
	Note     string     `json:"note"`
	Duration int        `json:"duration"`
}
