package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/soulwave/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	// Replays are deterministic only when every tick is present, in order
	for i, f := range data.Frames {
		if f.F != i {
			return nil, fmt.Errorf("replay frame %d has tick %d", i, f.F)
		}
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		MoveX:   fi.MX,
		MoveY:   fi.MY,
		Strike:  fi.S,
		Skill:   fi.K,
		Collect: fi.C,
	}, true
}

// Done returns true once every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (player walking in one direction)
func CreateTestReplayData(frames int, moveX, moveY float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: moveX,
			MY: moveY,
		}
	}

	return data
}
