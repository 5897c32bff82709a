package glw

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"
)

// MaxInfoLog caps the length in bytes of shader and program diagnostics.
// Zero or less keeps the full log.
var MaxInfoLog = 512

// ShaderError reports a failed compile or link along with the driver's info log.
type ShaderError struct {
	// Stage is one of "vertex", "fragment" or "link".
	Stage string
	// Caller is the first file and line outside this package that requested the build.
	Caller string
	Log    string
}

func (err *ShaderError) Error() string {
	if err.Stage == "link" {
		return fmt.Sprintf("glw: link program failed at %s: %s", err.Caller, err.Log)
	}
	return fmt.Sprintf("glw: compile %s shader failed at %s: %s", err.Stage, err.Caller, err.Log)
}

// infoLog trims msg to at most MaxInfoLog bytes without splitting a rune.
// Drivers may report no log at all for a failure.
func infoLog(msg string) string {
	msg = strings.TrimRight(msg, "\x00\n ")
	if msg == "" {
		return "no info log"
	}
	if n := MaxInfoLog; n > 0 && len(msg) > n {
		for n > 0 && !utf8.RuneStart(msg[n]) {
			n--
		}
		msg = msg[:n]
	}
	return msg
}

// caller returns first file and line number outside of this package for calling
// goroutine's stack.
func caller() string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/learngl/glw.") }
	)
	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
	}
	return fmt.Sprintf("%s:%v", frame.File, frame.Line)
}

func stageName(typ Enum) string {
	if typ == VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

// compile always returns a shader handle, even when compilation fails.
func compile(typ Enum, src string) (uint32, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == FALSE {
		err := &ShaderError{Stage: stageName(typ), Caller: caller(), Log: infoLog(ctx.GetShaderInfoLog(shd))}
		logger.Error("shader compilation failed", "stage", err.Stage, "caller", err.Caller, "log", err.Log)
		return shd, err
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile() (uint32, error) { return compile(VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile() (uint32, error) { return compile(FRAGMENT_SHADER, string(src)) }

// Program identifies a linked shader program.
type Program struct{ Program uint32 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { ctx.UseProgram(prg.Program) }

// Uniform returns uniform location by name in program; -1 if not active.
func (prg Program) Uniform(name string) int32 { return ctx.GetUniformLocation(prg.Program, name) }

// Delete frees the memory and invalidates the name associated with the program.
func (prg Program) Delete() { ctx.DeleteProgram(prg.Program) }

// Linked reports the program's link status.
func (prg Program) Linked() bool { return ctx.GetProgrami(prg.Program, LINK_STATUS) != FALSE }

// Build compiles both shaders and links program.
//
// A stage that fails to compile is logged and still attached; linking is
// attempted regardless so prg always holds a handle that may be used and
// deleted. The returned error joins every ShaderError encountered.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	var errs []error

	vshd, err := vsrc.Compile()
	if err != nil {
		errs = append(errs, err)
	}
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		errs = append(errs, err)
	}
	defer ctx.DeleteShader(fshd)

	prg.Program = ctx.CreateProgram()
	ctx.AttachShader(prg.Program, vshd)
	ctx.AttachShader(prg.Program, fshd)
	ctx.LinkProgram(prg.Program)

	if !prg.Linked() {
		err := &ShaderError{Stage: "link", Caller: caller(), Log: infoLog(ctx.GetProgramInfoLog(prg.Program))}
		logger.Error("program link failed", "caller", err.Caller, "log", err.Log)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Install is a helper that wraps Program.Build and Program.Use.
func (prg *Program) Install(vsrc VertSrc, fsrc FragSrc) error {
	err := prg.Build(vsrc, fsrc)
	prg.Use()
	return err
}
