package replay

// Version is written into every saved replay
const Version = "2.0"

// FrameInput records the controller input for a single tick
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	MX  float64 `json:"mx,omitempty"`  // Move intent X
	MY  float64 `json:"my,omitempty"`  // Move intent Y
	Dsh bool    `json:"dsh,omitempty"` // Dash pressed this tick
}

// Data contains all data needed to replay a session.
// DT is the fixed tick the session ran at; playback must use the same value.
type Data struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	DT        float64      `json:"dt"`
	Frames    []FrameInput `json:"frames"`
}
