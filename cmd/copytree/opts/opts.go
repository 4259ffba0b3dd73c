package opts

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/copytree/pkg/extattr"
	"github.com/walteh/copytree/pkg/log"
)

// RootOpts contains shared options used by all commands. The flag
// fields are bound by the root command and read after parsing, so the
// accessors build their dependencies lazily.
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Quiet      bool

	Store      extattr.Store // nil means the system store
	UserLogger *log.Logger   // nil until the first Logger call
}

// Level returns the zerolog level selected by the debug flag
func (o *RootOpts) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Logger returns the shared console logger, creating it on first use
func (o *RootOpts) Logger() *log.Logger {
	if o.UserLogger == nil {
		console := io.Writer(os.Stdout)
		if o.Quiet {
			console = io.Discard
		}
		o.UserLogger = log.New(console, o.Level())
	}
	return o.UserLogger
}

// AttrStore returns the attribute store, defaulting to the system store
func (o *RootOpts) AttrStore() extattr.Store {
	if o.Store == nil {
		o.Store = extattr.System()
	}
	return o.Store
}
