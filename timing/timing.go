package timing

import "time"

var (
	frameStartTime time.Time
	frameEndTime   time.Time
	dt             float32
)

func Init() {
	frameStartTime = time.Now()
	frameEndTime = frameStartTime
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {
	frameEndTime = time.Now()
	dt = float32(frameEndTime.Sub(frameStartTime).Seconds())
}

// DT returns the duration of the last frame, in seconds
func DT() float32 {
	return dt
}
