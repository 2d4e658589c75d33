package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Tick number
	MX float64 `json:"mx,omitempty"` // Move X
	MY float64 `json:"my,omitempty"` // Move Y
	S  bool    `json:"s,omitempty"`  // Sword strike
	K  bool    `json:"k,omitempty"`  // Skill
	C  bool    `json:"c,omitempty"`  // Collect soul
}

// ReplayData contains all data needed to replay a session. The seed, variant
// and stage rebuild the same arena; the frames drive the player.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Variant   string       `json:"variant"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
