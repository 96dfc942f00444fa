package buffers

import (
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/logging"
)

type VertexBuffer struct {
	Id     gpu.Buffer
	Stride int32
	layout []Element
}

func (vb *VertexBuffer) Bind(ctx gpu.Context) {
	ctx.BindBuffer(gpu.Target_Array, vb.Id)
}

// SetData binds the buffer and replaces its whole data store with values.
// values is not retained after the call returns.
func (vb *VertexBuffer) SetData(ctx gpu.Context, values []float32, usage BufUsage) {
	vb.Bind(ctx)
	ctx.BufferData(gpu.Target_Array, values, usage.ToGPU())
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

// VertexCount returns how many whole vertices of this layout fit in floatCount float32s
func (vb *VertexBuffer) VertexCount(floatCount int) int {

	if vb.Stride == 0 {
		return 0
	}

	return floatCount * 4 / int(vb.Stride)
}

func (vb *VertexBuffer) Delete(ctx gpu.Context) {

	if vb.Id == 0 {
		return
	}

	ctx.DeleteBuffer(vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(ctx gpu.Context, layout ...Element) (VertexBuffer, error) {

	vb := VertexBuffer{}

	vb.Id = ctx.CreateBuffer()
	if vb.Id == 0 {
		logging.ErrLog.Println("Failed to create GPU buffer")
		return VertexBuffer{}, &gpu.ResourceCreationError{Kind: gpu.ResourceKind_Buffer}
	}

	vb.SetLayout(layout...)
	return vb, nil
}
