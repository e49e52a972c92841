//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	cfg    DisplayConfig
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

func stdoutWriter() io.Writer { return os.Stdout }

func newHost(cfg DisplayConfig, logOut io.Writer) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// push queues a key event without blocking; events are dropped when the
// queue is full.
func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
