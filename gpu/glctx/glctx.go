// Package glctx implements gpu.Context on top of OpenGL 4.1 core.
//
// gl.Init must have been called on the current thread (engine.CreateOpenGLWindowCentered does this)
// before any method is used.
package glctx

import (
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/vortonsim/vortonview/gpu"
)

var _ gpu.Context = &GLContext{}

type GLContext struct{}

func New() *GLContext {
	return &GLContext{}
}

func (c *GLContext) CreateBuffer() gpu.Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return gpu.Buffer(id)
}

func (c *GLContext) BindBuffer(target gpu.Target, buf gpu.Buffer) {
	gl.BindBuffer(uint32(target), uint32(buf))
}

func (c *GLContext) BufferData(target gpu.Target, data []float32, usage gpu.Usage) {

	sizeInBytes := len(data) * 4
	if sizeInBytes == 0 {
		gl.BufferData(uint32(target), 0, gl.Ptr(nil), uint32(usage))
		return
	}

	// The driver copies out of data before BufferData returns
	gl.BufferData(uint32(target), sizeInBytes, gl.Ptr(&data[0]), uint32(usage))
	runtime.KeepAlive(data)
}

func (c *GLContext) DeleteBuffer(buf gpu.Buffer) {
	id := uint32(buf)
	gl.DeleteBuffers(1, &id)
}

func (c *GLContext) CreateVertexArray() gpu.VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return gpu.VertexArray(id)
}

func (c *GLContext) BindVertexArray(vao gpu.VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

func (c *GLContext) DeleteVertexArray(vao gpu.VertexArray) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (c *GLContext) VertexAttribPointer(index uint32, size int32, typ gpu.DataType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (c *GLContext) GetAttribLocation(prog gpu.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(prog), gl.Str(name+"\x00"))
}

func (c *GLContext) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *GLContext) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	return gpu.Shader(gl.CreateShader(uint32(stage)))
}

func (c *GLContext) ShaderSource(shader gpu.Shader, src string) {
	srcCStr, srcFree := gl.Strs(src + "\x00")
	defer srcFree()
	gl.ShaderSource(uint32(shader), 1, srcCStr, nil)
}

func (c *GLContext) CompileShader(shader gpu.Shader) {
	gl.CompileShader(uint32(shader))
}

func (c *GLContext) ShaderStatus(shader gpu.Shader) (ok bool, infoLog string) {

	var compiledSuccessfully int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return false, ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, log)
	return false, gl.GoStr(log)
}

func (c *GLContext) DeleteShader(shader gpu.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (c *GLContext) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (c *GLContext) AttachShader(prog gpu.Program, shader gpu.Shader) {
	gl.AttachShader(uint32(prog), uint32(shader))
}

func (c *GLContext) LinkProgram(prog gpu.Program) {
	gl.LinkProgram(uint32(prog))
}

func (c *GLContext) ProgramStatus(prog gpu.Program) (ok bool, infoLog string) {

	var linkedSuccessfully int32
	gl.GetProgramiv(uint32(prog), gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(uint32(prog), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return false, ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(uint32(prog), logLength, nil, log)
	return false, gl.GoStr(log)
}

func (c *GLContext) UseProgram(prog gpu.Program) {
	gl.UseProgram(uint32(prog))
}

func (c *GLContext) DeleteProgram(prog gpu.Program) {
	gl.DeleteProgram(uint32(prog))
}

func (c *GLContext) GetUniformLocation(prog gpu.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(prog), gl.Str(name+"\x00"))
}

func (c *GLContext) UniformMatrix4fv(location int32, transpose bool, value *[16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &value[0])
}

func (c *GLContext) DrawArrays(mode gpu.Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}
