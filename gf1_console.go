// gf1_console.go - interactive register console, scriptable via Lua

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/term"
)

// ConsoleSession wraps an Engine with a Lua interpreter exposing the port
// API as callable functions, the same role the teacher's debug monitor
// plays for its CPU core, but scriptable rather than command-keyword
// driven: a session script can poke registers and drive Mix in a loop
// exactly as the end-to-end scenarios in the test suite do, without
// recompiling anything.
type ConsoleSession struct {
	engine *Engine
	lstate *lua.LState
	mutex  sync.Mutex
}

// NewConsoleSession builds a Lua state bound to engine and installs the
// gf1.* API table.
func NewConsoleSession(engine *Engine) *ConsoleSession {
	cs := &ConsoleSession{engine: engine, lstate: lua.NewState()}
	cs.installAPI()
	return cs
}

func (cs *ConsoleSession) installAPI() {
	tbl := cs.lstate.NewTable()
	cs.lstate.SetGlobal("gf1", tbl)

	reg := func(name string, fn lua.LGFunction) {
		cs.lstate.SetField(tbl, name, cs.lstate.NewFunction(fn))
	}

	reg("write", func(L *lua.LState) int {
		offset := L.CheckInt(1)
		value := L.CheckInt(2)
		cs.engine.WritePort(offset, uint8(value))
		return 0
	})
	reg("write16", func(L *lua.LState) int {
		offset := L.CheckInt(1)
		value := L.CheckInt(2)
		cs.engine.WritePort16(offset, uint16(value))
		return 0
	})
	reg("read", func(L *lua.LState) int {
		offset := L.CheckInt(1)
		L.Push(lua.LNumber(cs.engine.ReadPort(offset)))
		return 1
	})
	reg("mix", func(L *lua.LState) int {
		frames := L.CheckInt(1)
		cs.engine.Mix(frames)
		return 0
	})
	reg("reset", func(L *lua.LState) int {
		cs.engine.Reset()
		return 0
	})
	reg("trace", func(L *lua.LState) int {
		cs.engine.EnableRegisterTrace(L.CheckBool(1))
		return 0
	})
}

// Eval runs one line (or a multi-statement chunk) of Lua against the
// bound engine. Errors are returned, not printed, so callers choose how
// to surface them.
func (cs *ConsoleSession) Eval(chunk string) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	return cs.lstate.DoString(chunk)
}

// RunScriptFile evaluates a whole Lua file in one shot, for unattended
// session scripts passed on the command line.
func (cs *ConsoleSession) RunScriptFile(path string) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	return cs.lstate.DoFile(path)
}

// Close releases the Lua interpreter's resources.
func (cs *ConsoleSession) Close() {
	cs.lstate.Close()
}

// RawLineReader puts stdin in raw mode and assembles completed lines
// byte-by-byte, handing each finished line to onLine. This is the same
// shape as the teacher's terminal host (raw mode, CR/DEL translation,
// restore-on-stop), adapted here to feed a Lua evaluator instead of a
// memory-mapped terminal device.
type RawLineReader struct {
	onLine  func(line string)
	fd      int
	oldTerm *term.State
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
	buf     []byte
}

// NewRawLineReader builds a reader that calls onLine for each line typed
// at the terminal, with the trailing newline stripped.
func NewRawLineReader(onLine func(line string)) *RawLineReader {
	return &RawLineReader{
		onLine: onLine,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts the controlling terminal into raw mode and begins reading
// stdin on its own goroutine. Call Stop to restore the terminal.
func (r *RawLineReader) Start() error {
	r.fd = int(os.Stdin.Fd())
	old, err := term.MakeRaw(r.fd)
	if err != nil {
		close(r.done)
		return fmt.Errorf("gf1console: failed to set raw mode: %w", err)
	}
	r.oldTerm = old

	go func() {
		defer close(r.done)
		in := bufio.NewReader(os.Stdin)
		for {
			select {
			case <-r.stopCh:
				return
			default:
			}
			b, err := in.ReadByte()
			if err != nil {
				return
			}
			switch {
			case b == 0x04: // Ctrl-D: raw mode delivers it as a byte, not EOF
				return
			case b == '\r' || b == '\n':
				line := string(r.buf)
				r.buf = r.buf[:0]
				fmt.Print("\r\n")
				r.onLine(line)
			case b == 0x7F || b == 0x08:
				if len(r.buf) > 0 {
					r.buf = r.buf[:len(r.buf)-1]
					fmt.Print("\b \b")
				}
			default:
				r.buf = append(r.buf, b)
				os.Stdout.Write([]byte{b})
			}
		}
	}()
	return nil
}

// Stop terminates the reading goroutine and restores the terminal.
func (r *RawLineReader) Stop() {
	r.stopped.Do(func() {
		close(r.stopCh)
	})
	<-r.done
	if r.oldTerm != nil {
		_ = term.Restore(r.fd, r.oldTerm)
		r.oldTerm = nil
	}
}

// RunConsole drives an interactive console over raw stdin (no prompt is
// printed), evaluating each line as Lua against a freshly built Engine. It is the entry point
// for -mode=console.
func RunConsole(scriptPath string) error {
	pic := &loggingPIC{}
	dma := &LoopbackDMAChannel{}
	player, err := NewGusPlayer(44100)
	if err != nil {
		return fmt.Errorf("gf1console: %w", err)
	}

	engine, err := NewEngine(player, pic, dma)
	if err != nil {
		return err
	}
	player.SetupPlayer(engine)

	session := NewConsoleSession(engine)
	defer session.Close()

	if scriptPath != "" {
		if err := session.RunScriptFile(scriptPath); err != nil {
			return fmt.Errorf("gf1console: script error: %w", err)
		}
		return nil
	}

	fmt.Println("gf1console - type Lua against the gf1 table, Ctrl-D to quit")
	reader := NewRawLineReader(func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		if err := session.Eval(line); err != nil {
			fmt.Printf("error: %v\r\n", err)
		}
	})
	if err := reader.Start(); err != nil {
		return err
	}
	<-reader.done
	reader.Stop()
	return nil
}

// loggingPIC stands in for a real host PIC in standalone console/demo
// runs, where no interrupt controller exists to notify.
type loggingPIC struct{}

func (loggingPIC) ActivateIRQ(irq int) {}
