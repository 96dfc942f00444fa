package buffers

import (
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/logging"
)

type VertexArray struct {
	Id   gpu.VertexArray
	Vbos []VertexBuffer
}

func (va *VertexArray) Bind(ctx gpu.Context) {
	ctx.BindVertexArray(va.Id)
}

// AddVertexBuffer describes every element of the vbo layout as consecutive attribute
// indices, starting at 0, and enables them on this vertex array.
func (va *VertexArray) AddVertexBuffer(ctx gpu.Context, vbo VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind(ctx)
	vbo.Bind(ctx)

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		ctx.VertexAttribPointer(uint32(i), l.ElementType.CompCount(), l.ElementType.GPUType(), false, vbo.Stride, l.Offset)
		ctx.EnableVertexAttribArray(uint32(i))
	}

	// Re-describing an already attached vbo (e.g. after new data) must not attach it twice
	for i := 0; i < len(va.Vbos); i++ {
		if va.Vbos[i].Id == vbo.Id {
			va.Vbos[i] = vbo
			return
		}
	}

	va.Vbos = append(va.Vbos, vbo)
}

// Delete releases the vertex array object. The vbos it references are owned by the caller.
func (va *VertexArray) Delete(ctx gpu.Context) {

	if va.Id == 0 {
		return
	}

	ctx.DeleteVertexArray(va.Id)
	va.Id = 0
	va.Vbos = nil
}

func NewVertexArray(ctx gpu.Context) (VertexArray, error) {

	vao := VertexArray{}

	vao.Id = ctx.CreateVertexArray()
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create GPU vertex array object")
		return VertexArray{}, &gpu.ResourceCreationError{Kind: gpu.ResourceKind_VertexArray}
	}

	return vao, nil
}
