package replay

import (
	"fmt"
	"time"

	"github.com/younwookim/glide/internal/application/system"
	"github.com/younwookim/glide/internal/domain/motion"
)

// Recorder captures the controller input tick by tick
type Recorder struct {
	data        Data
	recording   bool
	dashed      bool
	unsubscribe func()
}

// NewRecorder starts recording a session on stage running at dt.
// Dash presses are taken from events.
func NewRecorder(stage string, dt float64, events system.DashEvents) *Recorder {
	r := &Recorder{
		data: Data{
			Version:   Version,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			DT:        dt,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
	if events != nil {
		r.unsubscribe = events.SubscribeDash(func() {
			if r.recording {
				r.dashed = true
			}
		})
	}
	return r
}

// RecordFrame records this tick's intent along with any dash press since the last frame
func (r *Recorder) RecordFrame(intent motion.Intent) {
	if !r.recording {
		return
	}

	intent = intent.Clamp()
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:   len(r.data.Frames),
		MX:  intent.X,
		MY:  intent.Y,
		Dsh: r.dashed,
	})
	r.dashed = false
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if err := Save(filename, r.data); err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	return nil
}

// Stop stops recording and drops the dash subscription
func (r *Recorder) Stop() {
	r.recording = false
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() Data {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
