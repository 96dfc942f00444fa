package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/gpu/gputest"
)

func TestSetLayout(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec4},
		Element{ElementType: DataTypeFloat32},
	)

	layout := vb.GetLayout()
	require.Len(t, layout, 3)
	assert.Equal(t, 0, layout[0].Offset)
	assert.Equal(t, 12, layout[1].Offset)
	assert.Equal(t, 28, layout[2].Offset)
	assert.Equal(t, int32(32), vb.Stride)

	assert.Equal(t, 2, vb.VertexCount(16))
	assert.Equal(t, 0, (&VertexBuffer{}).VertexCount(16))
}

func TestElementType(t *testing.T) {

	assert.Equal(t, int32(3), DataTypeVec3.CompCount())
	assert.Equal(t, int32(12), DataTypeVec3.Size())
	assert.Equal(t, gpu.DataType_Float, DataTypeVec3.GPUType())
	assert.Equal(t, gpu.DataType_UnsignedInt, DataTypeUint32.GPUType())
	assert.Equal(t, "Vec3", DataTypeVec3.String())

	assert.Panics(t, func() { DataTypeUnknown.CompCount() })
}

func TestBufUsage(t *testing.T) {

	assert.Equal(t, gpu.Usage_Static_Draw, BufUsage_Static_Draw.ToGPU())
	assert.Equal(t, gpu.Usage_Dynamic_Draw, BufUsage_Dynamic_Draw.ToGPU())
	assert.Equal(t, gpu.Usage_Stream_Copy, BufUsage_Stream_Copy.ToGPU())
	assert.Panics(t, func() { BufUsage_Unknown.ToGPU() })
}

func TestVertexBufferSetData(t *testing.T) {

	ctx := gputest.New()

	vb, err := NewVertexBuffer(ctx, Element{ElementType: DataTypeVec3})
	require.NoError(t, err)
	require.NotZero(t, vb.Id)

	data := []float32{1, 2, 3, 4, 5, 6}
	vb.SetData(ctx, data, BufUsage_Static_Draw)

	// The context must have its own copy
	data[0] = 100

	up := ctx.LastUpload()
	assert.Equal(t, vb.Id, up.Buffer)
	assert.Equal(t, gpu.Target_Array, up.Target)
	assert.Equal(t, gpu.Usage_Static_Draw, up.Usage)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, up.Data)

	vb.SetData(ctx, nil, BufUsage_Static_Draw)
	assert.Empty(t, ctx.LastUpload().Data)

	vb.Delete(ctx)
	assert.Zero(t, vb.Id)
	assert.Zero(t, ctx.Live(gpu.ResourceKind_Buffer))

	// Second delete is a no-op
	vb.Delete(ctx)
	assert.Equal(t, 1, ctx.CallCount("DeleteBuffer"))
}

func TestNewVertexBufferFails(t *testing.T) {

	ctx := gputest.New()
	ctx.FailBuffers = true

	_, err := NewVertexBuffer(ctx, Element{ElementType: DataTypeVec3})
	require.ErrorIs(t, err, gpu.ErrResourceCreation)

	var rce *gpu.ResourceCreationError
	require.ErrorAs(t, err, &rce)
	assert.Equal(t, gpu.ResourceKind_Buffer, rce.Kind)
}

func TestVertexArrayAddVertexBuffer(t *testing.T) {

	ctx := gputest.New()

	vao, err := NewVertexArray(ctx)
	require.NoError(t, err)

	vb, err := NewVertexBuffer(ctx, Element{ElementType: DataTypeVec3}, Element{ElementType: DataTypeVec2})
	require.NoError(t, err)

	vao.AddVertexBuffer(ctx, vb)
	vao.AddVertexBuffer(ctx, vb)

	assert.Len(t, vao.Vbos, 1)
	assert.Equal(t, vao.Id, ctx.BoundVertexArray)

	require.Len(t, ctx.AttribPointers, 4)
	first := ctx.AttribPointers[0]
	assert.Equal(t, gputest.AttribPointer{
		VertexArray: vao.Id,
		Buffer:      vb.Id,
		Index:       0,
		Size:        3,
		Type:        gpu.DataType_Float,
		Stride:      20,
		Offset:      0,
	}, first)
	assert.Equal(t, uint32(1), ctx.AttribPointers[1].Index)
	assert.Equal(t, 12, ctx.AttribPointers[1].Offset)
	assert.Equal(t, []uint32{0, 1, 0, 1}, ctx.EnabledAttribs[vao.Id])

	vao.Delete(ctx)
	assert.Zero(t, vao.Id)
	assert.Empty(t, vao.Vbos)
	assert.Zero(t, ctx.Live(gpu.ResourceKind_VertexArray))
	assert.Equal(t, 1, ctx.Live(gpu.ResourceKind_Buffer))
}

func TestNewVertexArrayFails(t *testing.T) {

	ctx := gputest.New()
	ctx.FailVertexArrays = true

	_, err := NewVertexArray(ctx)

	var rce *gpu.ResourceCreationError
	require.ErrorAs(t, err, &rce)
	assert.Equal(t, gpu.ResourceKind_VertexArray, rce.Kind)
}
