package buffers

import (
	"github.com/vortonsim/vortonview/assert"
	"github.com/vortonsim/vortonview/gpu"
)

type BufUsage int

// Full docs for buffer usage can be found here: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	BufUsage_Unknown BufUsage = iota

	//Buffer is set only once and used many times
	BufUsage_Static_Draw
	//Buffer is changed a lot and used many times
	BufUsage_Dynamic_Draw
	//Buffer is set only once and used by the GPU at most a few times
	BufUsage_Stream_Draw

	BufUsage_Static_Read
	BufUsage_Dynamic_Read
	BufUsage_Stream_Read

	BufUsage_Static_Copy
	BufUsage_Dynamic_Copy
	BufUsage_Stream_Copy
)

func (b BufUsage) ToGPU() gpu.Usage {
	switch b {
	case BufUsage_Static_Draw:
		return gpu.Usage_Static_Draw
	case BufUsage_Dynamic_Draw:
		return gpu.Usage_Dynamic_Draw
	case BufUsage_Stream_Draw:
		return gpu.Usage_Stream_Draw

	case BufUsage_Static_Read:
		return gpu.Usage_Static_Read
	case BufUsage_Dynamic_Read:
		return gpu.Usage_Dynamic_Read
	case BufUsage_Stream_Read:
		return gpu.Usage_Stream_Read

	case BufUsage_Static_Copy:
		return gpu.Usage_Static_Copy
	case BufUsage_Dynamic_Copy:
		return gpu.Usage_Dynamic_Copy
	case BufUsage_Stream_Copy:
		return gpu.Usage_Stream_Copy
	}

	assert.T(false, "Unexpected BufUsage value '%v'", b)
	return 0
}
