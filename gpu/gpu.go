// Package gpu defines the rendering context capability that every drawing
// operation receives, along with the object handles and enums it speaks in.
//
// Enum values are the OpenGL ones, so an OpenGL backend passes them through unchanged.
package gpu

// Object names. Zero means 'no object', both as a failed create result and as 'unbind'.
type (
	Buffer      uint32
	VertexArray uint32
	Shader      uint32
	Program     uint32
)

type Target uint32

const (
	Target_Array        Target = 0x8892
	Target_ElementArray Target = 0x8893
)

type Usage uint32

const (
	Usage_Stream_Draw  Usage = 0x88E0
	Usage_Stream_Read  Usage = 0x88E1
	Usage_Stream_Copy  Usage = 0x88E2
	Usage_Static_Draw  Usage = 0x88E4
	Usage_Static_Read  Usage = 0x88E5
	Usage_Static_Copy  Usage = 0x88E6
	Usage_Dynamic_Draw Usage = 0x88E8
	Usage_Dynamic_Read Usage = 0x88E9
	Usage_Dynamic_Copy Usage = 0x88EA
)

type DataType uint32

const (
	DataType_Int         DataType = 0x1404
	DataType_UnsignedInt DataType = 0x1405
	DataType_Float       DataType = 0x1406
)

type ShaderStage uint32

const (
	ShaderStage_Fragment ShaderStage = 0x8B30
	ShaderStage_Vertex   ShaderStage = 0x8B31
	ShaderStage_Geometry ShaderStage = 0x8DD9
)

func (s ShaderStage) String() string {

	switch s {
	case ShaderStage_Vertex:
		return "vertex"
	case ShaderStage_Fragment:
		return "fragment"
	case ShaderStage_Geometry:
		return "geometry"
	default:
		return "unknown"
	}
}

type Primitive uint32

const (
	Primitive_Points    Primitive = 0x0000
	Primitive_Lines     Primitive = 0x0001
	Primitive_Triangles Primitive = 0x0004
)

// Context is the GPU command interface. Implementations are not safe for concurrent
// use; all calls must happen on the thread that owns the underlying context.
type Context interface {
	CreateBuffer() Buffer
	BindBuffer(target Target, buf Buffer)
	// BufferData uploads data into the buffer bound to target. The slice is only
	// read for the duration of the call.
	BufferData(target Target, data []float32, usage Usage)
	DeleteBuffer(buf Buffer)

	CreateVertexArray() VertexArray
	BindVertexArray(vao VertexArray)
	DeleteVertexArray(vao VertexArray)

	VertexAttribPointer(index uint32, size int32, typ DataType, normalized bool, stride int32, offset int)
	GetAttribLocation(prog Program, name string) int32
	EnableVertexAttribArray(index uint32)

	CreateShader(stage ShaderStage) Shader
	ShaderSource(shader Shader, src string)
	CompileShader(shader Shader)
	// ShaderStatus reports whether the last compile succeeded, and the info log when it didn't
	ShaderStatus(shader Shader) (ok bool, infoLog string)
	DeleteShader(shader Shader)

	CreateProgram() Program
	AttachShader(prog Program, shader Shader)
	LinkProgram(prog Program)
	ProgramStatus(prog Program) (ok bool, infoLog string)
	UseProgram(prog Program)
	DeleteProgram(prog Program)

	GetUniformLocation(prog Program, name string) int32
	// UniformMatrix4fv sets a mat4 uniform on the program in use. value is column-major.
	UniformMatrix4fv(location int32, transpose bool, value *[16]float32)

	DrawArrays(mode Primitive, first, count int32)
}
