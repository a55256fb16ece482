package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/glide/internal/application/system"
	"github.com/younwookim/glide/internal/domain/motion"
)

// ErrEmpty is returned when saving or playing a replay without frames
var ErrEmpty = errors.New("replay has no frames")

// Replayer plays recorded frames back as an input source.
// It implements system.IntentSource and system.DashEvents.
type Replayer struct {
	data    Data
	frame   int
	current FrameInput
	started bool
	presses system.Signal
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load reads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay %s: %w", filename, err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmpty)
	}
	return &data, nil
}

// Save writes replay data to a file
func Save(filename string, data Data) error {
	if len(data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Next makes the next recorded frame current and publishes its dash press.
// Returns false once every frame has been played.
func (r *Replayer) Next() bool {
	if r.frame >= len(r.data.Frames) {
		r.current = FrameInput{}
		return false
	}

	r.current = r.data.Frames[r.frame]
	r.frame++
	r.started = true
	if r.current.Dsh {
		r.presses.Publish()
	}
	return true
}

// Intent implements system.IntentSource. Nothing is bound before the first Next.
func (r *Replayer) Intent() (motion.Intent, bool) {
	if !r.started {
		return motion.Intent{}, false
	}
	return motion.Intent{X: r.current.MX, Y: r.current.MY}, true
}

// SubscribeDash implements system.DashEvents
func (r *Replayer) SubscribeDash(fn func()) func() {
	return r.presses.Subscribe(fn)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the number of frames played so far
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the replay being played
func (r *Replayer) Data() Data {
	return r.data
}

// Reset rewinds to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = FrameInput{}
	r.started = false
}

// CreateTestReplayData creates replay data for testing: frames of a constant intent
func CreateTestReplayData(frames int, mx, my float64) Data {
	data := Data{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		DT:        1.0 / 60.0,
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, MX: mx, MY: my}
	}
	return data
}
