package gl

import (
	"fmt"
	"log/slog"
	"strings"

	rawgl "github.com/tinyrange/glsafe/internal/gl"
)

// ProcAddressFunc resolves an entry point name such as "glGenBuffers" to its
// address in the current context, or 0 if it is unknown.
type ProcAddressFunc = rawgl.ProcAddressFunc

// Context is the typed surface of one OpenGL context.
//
// A Context holds no OpenGL state of its own. It must only be used from the
// thread on which its OpenGL context is current.
type Context struct {
	fns *rawgl.Functions
	log *slog.Logger
}

// Load resolves every entry point through loader. The OpenGL context must be
// current on the calling thread.
func Load(loader ProcAddressFunc, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fns, err := rawgl.Load(loader)
	if err != nil {
		return nil, err
	}
	c := newContext(fns, o.logger)
	for _, name := range fns.Missing() {
		c.log.Debug("opengl entry point unavailable", "name", name)
	}
	c.log.Info("opengl loaded",
		"version", rawgl.GoString(fns.GetString(rawgl.Version)),
		"renderer", rawgl.GoString(fns.GetString(rawgl.Renderer)),
		"missing", len(fns.Missing()),
	)
	return c, nil
}

// LoadDefault loads the platform's OpenGL library (or the one given with
// WithLibrary) and resolves entry points from it.
func LoadDefault(opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	loader, err := rawgl.DefaultLoader(o.library)
	if err != nil {
		return nil, fmt.Errorf("load opengl: %w", err)
	}
	return Load(loader, opts...)
}

func newContext(fns *rawgl.Functions, log *slog.Logger) *Context {
	if log == nil {
		log = nopLogger()
	}
	return &Context{fns: fns, log: log}
}

// GetError returns the current error flag and resets it.
func (c *Context) GetError() ErrorCode {
	return ErrorCode(c.fns.GetError())
}

// poll reads and clears the error flag after a wrapped call.
func (c *Context) poll() ErrorCode {
	if !errorChecks {
		return NoError
	}
	return ErrorCode(c.fns.GetError())
}

func (c *Context) fail(e *Error) error {
	c.log.Debug("opengl call failed", "op", e.Op, "kind", e.Kind, "code", e.Code)
	return e
}

// plain reports code without refining it.
func (c *Context) plain(op string, code ErrorCode) error {
	return c.fail(&Error{Op: op, Kind: KindOpenGL, Code: code})
}

// unclassified handles codes outside a wrapper's table. Any command may run
// out of memory; everything else is a driver or classification bug.
func (c *Context) unclassified(op string, code ErrorCode) error {
	if code == OutOfMemory {
		return c.plain(op, code)
	}
	c.log.Warn("opengl raised an undocumented error", "op", op, "code", code)
	return &Error{Op: op, Kind: KindUnreachable, Code: code}
}

func (c *Context) missing(op string) error {
	return c.fail(&Error{Op: op, Kind: KindMissingEntryPoint, Name: op})
}

// withOp attributes a conversion failure to op.
func (c *Context) withOp(op string, err error) error {
	if e, ok := err.(*Error); ok {
		e.Op = op
		return c.fail(e)
	}
	return err
}

func (c *Context) getInteger(pname uint32) int32 {
	var v int32
	c.fns.GetIntegerv(pname, &v)
	return v
}

// StringName selects the string returned by GetString.
type StringName uint32

const (
	VendorString                 StringName = rawgl.Vendor
	RendererString               StringName = rawgl.Renderer
	VersionString                StringName = rawgl.Version
	ShadingLanguageVersionString StringName = rawgl.ShadingLanguageVersion
)

var stringNames = newEnum("StringName",
	variant[StringName]{VendorString, "Vendor"},
	variant[StringName]{RendererString, "Renderer"},
	variant[StringName]{VersionString, "Version"},
	variant[StringName]{ShadingLanguageVersionString, "ShadingLanguageVersion"},
)

func (n StringName) GLenum() uint32 { return uint32(n) }
func (n StringName) String() string { return stringNames.name(n) }

func StringNameFromGL(v uint32) (StringName, error) { return stringNames.fromGL(v) }
func StringNameValues() []StringName                { return stringNames.all() }

// GetString returns a string describing the current context.
func (c *Context) GetString(name StringName) (string, error) {
	const op = "glGetString"
	s := rawgl.GoString(c.fns.GetString(name.GLenum()))
	switch code := c.poll(); code {
	case NoError:
		return s, nil
	case InvalidEnum:
		return "", c.plain(op, code)
	default:
		return "", c.unclassified(op, code)
	}
}

// Version returns the major and minor version of the current context.
func (c *Context) Version() (major, minor int, err error) {
	s, err := c.GetString(VersionString)
	if err != nil {
		return 0, 0, err
	}
	return ParseVersion(s)
}

// ParseVersion parses a GL_VERSION string such as
// "4.5.0 NVIDIA 535.54.03" or "3.3 (Core Profile) Mesa 23.1.2".
func ParseVersion(s string) (major, minor int, err error) {
	if strings.HasPrefix(s, "OpenGL ES") {
		return 0, 0, fmt.Errorf("gl: %q is an OpenGL ES context", s)
	}
	if _, err := fmt.Sscanf(s, "%d.%d", &major, &minor); err != nil {
		return 0, 0, fmt.Errorf("gl: failed to parse OpenGL version %q: %w", s, err)
	}
	return major, minor, nil
}
