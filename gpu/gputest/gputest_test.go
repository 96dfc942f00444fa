package gputest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortonsim/vortonview/gpu"
)

func TestLiveObjectAccounting(t *testing.T) {

	ctx := New()

	buf := ctx.CreateBuffer()
	vao := ctx.CreateVertexArray()
	require.NotZero(t, buf)
	require.NotZero(t, vao)
	assert.NotEqual(t, uint32(buf), uint32(vao))

	assert.Equal(t, 1, ctx.Live(gpu.ResourceKind_Buffer))
	assert.Equal(t, 1, ctx.Created(gpu.ResourceKind_VertexArray))
	assert.Equal(t, 2, ctx.LiveTotal())

	ctx.DeleteBuffer(buf)
	ctx.DeleteVertexArray(vao)
	assert.Zero(t, ctx.LiveTotal())

	// Deleting the zero name is a no-op, like in GL
	ctx.DeleteBuffer(0)
	assert.Panics(t, func() { ctx.DeleteBuffer(buf) })
}

func TestFailureInjection(t *testing.T) {

	ctx := New()
	ctx.FailBuffers = true
	ctx.FailVertexArrays = true

	assert.Zero(t, ctx.CreateBuffer())
	assert.Zero(t, ctx.CreateVertexArray())
	assert.Zero(t, ctx.LiveTotal())
	assert.Equal(t, 1, ctx.CallCount("CreateBuffer"))
	assert.Zero(t, ctx.Created(gpu.ResourceKind_Buffer))
}

func TestProgramLocations(t *testing.T) {

	ctx := New()

	vs := ctx.CreateShader(gpu.ShaderStage_Vertex)
	ctx.ShaderSource(vs, "in vec3 aPos; in vec3 aNormal; uniform mat4 uMvp;")
	ctx.CompileShader(vs)

	ok, _ := ctx.ShaderStatus(vs)
	require.True(t, ok)

	prog := ctx.CreateProgram()
	assert.Equal(t, int32(-1), ctx.GetAttribLocation(prog, "aPos"))

	ctx.AttachShader(prog, vs)
	ctx.LinkProgram(prog)

	ok, _ = ctx.ProgramStatus(prog)
	require.True(t, ok)

	assert.Equal(t, int32(0), ctx.GetAttribLocation(prog, "aNormal"))
	assert.Equal(t, int32(1), ctx.GetAttribLocation(prog, "aPos"))
	assert.Equal(t, int32(0), ctx.GetAttribLocation(prog, "aNormal"))
	assert.Equal(t, int32(-1), ctx.GetAttribLocation(prog, "aColor"))
	assert.Equal(t, int32(0), ctx.GetUniformLocation(prog, "uMvp"))
}

func TestCompileAndLinkFailures(t *testing.T) {

	ctx := New()
	ctx.FailCompile(gpu.ShaderStage_Fragment, "bad fragment")

	fs := ctx.CreateShader(gpu.ShaderStage_Fragment)
	ctx.CompileShader(fs)

	ok, infoLog := ctx.ShaderStatus(fs)
	assert.False(t, ok)
	assert.Equal(t, "bad fragment", infoLog)

	// Linking with an uncompiled shader fails
	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)

	ok, _ = ctx.ProgramStatus(prog)
	assert.False(t, ok)
}

func TestRecordsDrawState(t *testing.T) {

	ctx := New()

	vao := ctx.CreateVertexArray()
	ctx.BindVertexArray(vao)
	ctx.UseProgram(7)

	m := [16]float32{1, 2, 3}
	ctx.UniformMatrix4fv(3, false, &m)
	m[0] = 100
	ctx.DrawArrays(gpu.Primitive_Points, 0, 12)

	require.Len(t, ctx.Uniforms, 1)
	assert.Equal(t, float32(1), ctx.Uniforms[0].Value[0])
	assert.Equal(t, int32(3), ctx.Uniforms[0].Location)

	assert.Equal(t, DrawCall{
		Program:     7,
		VertexArray: vao,
		Mode:        gpu.Primitive_Points,
		First:       0,
		Count:       12,
	}, ctx.LastDraw())
}
