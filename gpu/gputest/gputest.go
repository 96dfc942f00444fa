// Package gputest provides an in-memory gpu.Context that records what it is asked to do,
// for testing code that renders without needing a real GPU.
package gputest

import (
	"fmt"
	"strings"

	"github.com/vortonsim/vortonview/gpu"
)

var _ gpu.Context = &Context{}

type Upload struct {
	Target gpu.Target
	Buffer gpu.Buffer
	Data   []float32
	Usage  gpu.Usage
}

type AttribPointer struct {
	VertexArray gpu.VertexArray
	Buffer      gpu.Buffer
	Index       uint32
	Size        int32
	Type        gpu.DataType
	Normalized  bool
	Stride      int32
	Offset      int
}

type UniformMatrix struct {
	Program   gpu.Program
	Location  int32
	Transpose bool
	Value     [16]float32
}

type DrawCall struct {
	Program     gpu.Program
	VertexArray gpu.VertexArray
	Mode        gpu.Primitive
	First       int32
	Count       int32
}

type shaderState struct {
	stage    gpu.ShaderStage
	src      string
	compiled bool
	log      string
}

type programState struct {
	shaders  []gpu.Shader
	sources  []string
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
}

// Context records every call made on it. The zero value is not usable, use New.
type Context struct {
	// FailBuffers makes CreateBuffer return 0
	FailBuffers bool
	// FailVertexArrays makes CreateVertexArray return 0
	FailVertexArrays bool
	// FailLink makes every LinkProgram fail with LinkLog
	FailLink bool
	LinkLog  string

	Calls []string

	BoundBuffers     map[gpu.Target]gpu.Buffer
	BoundVertexArray gpu.VertexArray
	CurrentProgram   gpu.Program

	Uploads        []Upload
	AttribPointers []AttribPointer
	EnabledAttribs map[gpu.VertexArray][]uint32
	Uniforms       []UniformMatrix
	Draws          []DrawCall

	failCompile map[gpu.ShaderStage]string
	lastName    uint32
	live        map[uint32]string
	shaders     map[gpu.Shader]*shaderState
	programs    map[gpu.Program]*programState
}

func New() *Context {
	return &Context{
		BoundBuffers:   make(map[gpu.Target]gpu.Buffer),
		EnabledAttribs: make(map[gpu.VertexArray][]uint32),
		failCompile:    make(map[gpu.ShaderStage]string),
		live:           make(map[uint32]string),
		shaders:        make(map[gpu.Shader]*shaderState),
		programs:       make(map[gpu.Program]*programState),
	}
}

// FailCompile makes compiling any shader of the given stage fail with infoLog
func (c *Context) FailCompile(stage gpu.ShaderStage, infoLog string) {
	c.failCompile[stage] = infoLog
}

// Live returns how many objects of kind ("buffer", "vertex_array", "shader", "program")
// were created and not yet deleted.
func (c *Context) Live(kind gpu.ResourceKind) int {

	n := 0
	for _, k := range c.live {
		if k == string(kind) {
			n++
		}
	}

	return n
}

func (c *Context) LiveTotal() int {
	return len(c.live)
}

// Created returns how many times a create call of kind succeeded
func (c *Context) Created(kind gpu.ResourceKind) int {
	return c.countCalls("Create" + kindToCallSuffix(kind) + ":ok")
}

// CallCount returns how many times the named method was called
func (c *Context) CallCount(method string) int {

	n := 0
	for _, call := range c.Calls {
		if call == method || strings.HasPrefix(call, method+":") {
			n++
		}
	}

	return n
}

// LastUpload returns the most recent BufferData call. It panics if there was none.
func (c *Context) LastUpload() Upload {
	return c.Uploads[len(c.Uploads)-1]
}

// LastDraw returns the most recent DrawArrays call. It panics if there was none.
func (c *Context) LastDraw() DrawCall {
	return c.Draws[len(c.Draws)-1]
}

func (c *Context) countCalls(call string) int {

	n := 0
	for _, v := range c.Calls {
		if v == call {
			n++
		}
	}

	return n
}

func kindToCallSuffix(kind gpu.ResourceKind) string {

	switch kind {
	case gpu.ResourceKind_Buffer:
		return "Buffer"
	case gpu.ResourceKind_VertexArray:
		return "VertexArray"
	case gpu.ResourceKind_Shader:
		return "Shader"
	case gpu.ResourceKind_Program:
		return "Program"
	default:
		return string(kind)
	}
}

func (c *Context) record(method string) {
	c.Calls = append(c.Calls, method)
}

func (c *Context) newName(kind gpu.ResourceKind) uint32 {
	c.lastName++
	c.live[c.lastName] = string(kind)
	return c.lastName
}

func (c *Context) release(name uint32, kind gpu.ResourceKind) {

	if name == 0 {
		return
	}

	if c.live[name] != string(kind) {
		panic(fmt.Sprintf("gputest: deleting %s %d which is not a live %s", kind, name, kind))
	}

	delete(c.live, name)
}

func (c *Context) CreateBuffer() gpu.Buffer {

	if c.FailBuffers {
		c.record("CreateBuffer:fail")
		return 0
	}

	c.record("CreateBuffer:ok")
	return gpu.Buffer(c.newName(gpu.ResourceKind_Buffer))
}

func (c *Context) BindBuffer(target gpu.Target, buf gpu.Buffer) {
	c.record("BindBuffer")
	c.BoundBuffers[target] = buf
}

func (c *Context) BufferData(target gpu.Target, data []float32, usage gpu.Usage) {

	c.record("BufferData")

	cp := make([]float32, len(data))
	copy(cp, data)
	c.Uploads = append(c.Uploads, Upload{
		Target: target,
		Buffer: c.BoundBuffers[target],
		Data:   cp,
		Usage:  usage,
	})
}

func (c *Context) DeleteBuffer(buf gpu.Buffer) {

	c.record("DeleteBuffer")
	c.release(uint32(buf), gpu.ResourceKind_Buffer)
	for t, b := range c.BoundBuffers {
		if b == buf {
			c.BoundBuffers[t] = 0
		}
	}
}

func (c *Context) CreateVertexArray() gpu.VertexArray {

	if c.FailVertexArrays {
		c.record("CreateVertexArray:fail")
		return 0
	}

	c.record("CreateVertexArray:ok")
	return gpu.VertexArray(c.newName(gpu.ResourceKind_VertexArray))
}

func (c *Context) BindVertexArray(vao gpu.VertexArray) {
	c.record("BindVertexArray")
	c.BoundVertexArray = vao
}

func (c *Context) DeleteVertexArray(vao gpu.VertexArray) {

	c.record("DeleteVertexArray")
	c.release(uint32(vao), gpu.ResourceKind_VertexArray)
	if c.BoundVertexArray == vao {
		c.BoundVertexArray = 0
	}
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ gpu.DataType, normalized bool, stride int32, offset int) {

	c.record("VertexAttribPointer")
	c.AttribPointers = append(c.AttribPointers, AttribPointer{
		VertexArray: c.BoundVertexArray,
		Buffer:      c.BoundBuffers[gpu.Target_Array],
		Index:       index,
		Size:        size,
		Type:        typ,
		Normalized:  normalized,
		Stride:      stride,
		Offset:      offset,
	})
}

func (c *Context) GetAttribLocation(prog gpu.Program, name string) int32 {
	c.record("GetAttribLocation")
	return c.location(prog, name, true)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray")
	c.EnabledAttribs[c.BoundVertexArray] = append(c.EnabledAttribs[c.BoundVertexArray], index)
}

func (c *Context) CreateShader(stage gpu.ShaderStage) gpu.Shader {

	c.record("CreateShader:ok")
	s := gpu.Shader(c.newName(gpu.ResourceKind_Shader))
	c.shaders[s] = &shaderState{stage: stage}
	return s
}

func (c *Context) ShaderSource(shader gpu.Shader, src string) {
	c.record("ShaderSource")
	c.shaders[shader].src = src
}

func (c *Context) CompileShader(shader gpu.Shader) {

	c.record("CompileShader")

	s := c.shaders[shader]
	if infoLog, ok := c.failCompile[s.stage]; ok {
		s.compiled = false
		s.log = infoLog
		return
	}

	s.compiled = true
	s.log = ""
}

func (c *Context) ShaderStatus(shader gpu.Shader) (ok bool, infoLog string) {
	s := c.shaders[shader]
	return s.compiled, s.log
}

func (c *Context) DeleteShader(shader gpu.Shader) {
	c.record("DeleteShader")
	c.release(uint32(shader), gpu.ResourceKind_Shader)
}

func (c *Context) CreateProgram() gpu.Program {

	c.record("CreateProgram:ok")
	p := gpu.Program(c.newName(gpu.ResourceKind_Program))
	c.programs[p] = &programState{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
	}
	return p
}

func (c *Context) AttachShader(prog gpu.Program, shader gpu.Shader) {
	c.record("AttachShader")
	c.programs[prog].shaders = append(c.programs[prog].shaders, shader)
}

func (c *Context) LinkProgram(prog gpu.Program) {

	c.record("LinkProgram")

	p := c.programs[prog]
	if c.FailLink {
		p.linked = false
		p.log = c.LinkLog
		return
	}

	p.sources = p.sources[:0]
	for _, s := range p.shaders {
		st := c.shaders[s]
		if st == nil || !st.compiled {
			p.linked = false
			p.log = fmt.Sprintf("shader %d is not compiled", s)
			return
		}
		p.sources = append(p.sources, st.src)
	}

	p.linked = true
	p.log = ""
}

func (c *Context) ProgramStatus(prog gpu.Program) (ok bool, infoLog string) {
	p := c.programs[prog]
	return p.linked, p.log
}

func (c *Context) UseProgram(prog gpu.Program) {
	c.record("UseProgram")
	c.CurrentProgram = prog
}

func (c *Context) DeleteProgram(prog gpu.Program) {

	c.record("DeleteProgram")
	c.release(uint32(prog), gpu.ResourceKind_Program)
	delete(c.programs, prog)
	if c.CurrentProgram == prog {
		c.CurrentProgram = 0
	}
}

func (c *Context) GetUniformLocation(prog gpu.Program, name string) int32 {
	c.record("GetUniformLocation")
	return c.location(prog, name, false)
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, value *[16]float32) {

	c.record("UniformMatrix4fv")
	c.Uniforms = append(c.Uniforms, UniformMatrix{
		Program:   c.CurrentProgram,
		Location:  location,
		Transpose: transpose,
		Value:     *value,
	})
}

func (c *Context) DrawArrays(mode gpu.Primitive, first, count int32) {

	c.record("DrawArrays")
	c.Draws = append(c.Draws, DrawCall{
		Program:     c.CurrentProgram,
		VertexArray: c.BoundVertexArray,
		Mode:        mode,
		First:       first,
		Count:       count,
	})
}

// location hands out locations in request order, but only for names that appear in the
// linked sources. Unknown names (and unlinked programs) get -1, like a real driver.
func (c *Context) location(prog gpu.Program, name string, attrib bool) int32 {

	p := c.programs[prog]
	if p == nil || !p.linked {
		return -1
	}

	locs := p.uniforms
	if attrib {
		locs = p.attribs
	}

	if loc, ok := locs[name]; ok {
		return loc
	}

	for _, src := range p.sources {
		if strings.Contains(src, name) {
			loc := int32(len(locs))
			locs[name] = loc
			return loc
		}
	}

	return -1
}
