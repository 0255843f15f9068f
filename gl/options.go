package gl

import "log/slog"

// Option configures Load and LoadDefault.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	library string
}

func defaultOptions() options {
	return options{logger: nopLogger()}
}

// WithLogger sends the context's diagnostics to l. A nil logger disables
// logging, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = nopLogger()
		}
		o.logger = l
	}
}

// WithLibrary makes LoadDefault open path instead of the platform's OpenGL
// library. Load ignores it.
func WithLibrary(path string) Option {
	return func(o *options) {
		o.library = path
	}
}
