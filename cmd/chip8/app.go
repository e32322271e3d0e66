package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices/beeper"
	"github.com/hexaflex/chip8/devices/cpu"
	"github.com/hexaflex/chip8/devices/display"
	"github.com/hexaflex/chip8/devices/keypad"
)

// App defines application context.
type App struct {
	config       *Config         // Application configuration.
	window       *glfw.Window    // OpenGL/GLFW context.
	cpu          *CPUController  // VM with program to be run.
	display      *display.Device // Frame buffer renderer.
	keypad       *keypad.Device  // Keyboard and gamepad input.
	beeper       *beeper.Device  // Sound timer output.
	titleUpdated time.Time       // Value used to periodically update window title.
	lastRendered time.Time       // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config

	opts := []cpu.Option{
		cpu.WithQuirks(config.Quirks),
		cpu.WithTrace(a.printTrace),
	}

	if config.Seed != 0 {
		opts = append(opts, cpu.WithRand(rand.NewSource(config.Seed)))
	}

	a.cpu = NewCPUController(config.CPUFrequency, opts...)
	a.display = display.New(&a.cpu.CPU().Display)
	a.display.SetColors(config.Background, config.Foreground)
	a.keypad = keypad.New(a.cpu.CPU())
	a.beeper = beeper.New(config.Mute)
	a.cpu.Connect(a.display, a.keypad, a.beeper)
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	log.Println(Version())

	if err := a.loadProgram(); err != nil {
		return err
	}

	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	if err := a.cpu.Startup(); err != nil {
		return err
	}

	printHelp()

	if !a.config.Debug {
		a.cpu.Start()
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	a.keypad.Update()

	if err := a.cpu.Update(); err != nil {
		log.Println(err)
	}

	a.beeper.Set(a.cpu.Sounding())

	// Periodically render display contents.
	if time.Since(a.lastRendered) >= time.Second/60 {
		a.lastRendered = time.Now()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		a.display.Draw()
		a.window.SwapBuffers()
	}

	// Periodically update the window title to show the current cpu clock frequency.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		a.titleUpdated = time.Now()
		freq := prettyFrequency(a.cpu.Frequency())
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, version, freq))
	}

	// Sleep until the next instruction is due instead of spinning.
	glfw.WaitEventsTimeout(time.Millisecond.Seconds())
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	a.cpu.Stop()

	if err := a.cpu.Shutdown(); err != nil {
		log.Println(err)
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Keypad keys pass straight through. Hotkeys which overlap with the
	// keypad are reached with CTRL held down.
	if mods&glfw.ModControl == 0 || action == glfw.Release {
		if a.keypad.KeyCallback(key, action) {
			return
		}
	}

	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF5:
		a.keypad.Release()
		a.cpu.Reset()
	case glfw.KeyF6:
		a.keypad.Release()
		err = a.loadProgram()
	case glfw.KeyQ:
		a.cpu.ToggleRun()
	case glfw.KeyE:
		if !a.cpu.Running() {
			err = a.cpu.Step()
		}
	case glfw.KeyD:
		a.config.PrintTrace = !a.config.PrintTrace
	}

	if err != nil {
		log.Println(err)
	}
}

// framebufferSizeCallback keeps the display centered at its aspect ratio.
func (a *App) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(letterbox(width, height))
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := arch.DisplayWidth * a.config.ScaleFactor
	height := arch.DisplayHeight * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)
	a.window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	width, height = a.window.GetFramebufferSize()
	a.framebufferSizeCallback(a.window, width, height)
	return nil
}

// loadProgram loads the current program from disk and resets the cpu.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)
	return a.cpu.Load(a.config.Program)
}

// printTrace prints instruction trace data. This can be toggled
// on off through a.config.PrintTrace.
func (a *App) printTrace(i *cpu.Instruction) {
	if !a.config.PrintTrace {
		return
	}

	fmt.Println(formatTrace(i, &a.cpu.CPU().State))
}

// formatTrace returns a single trace line for the given instruction
// and the machine state it is about to execute with.
func formatTrace(i *cpu.Instruction, s *cpu.State) string {
	var sb strings.Builder
	sb.Grow(120)

	fmt.Fprintf(&sb, "%03x %04x  %-16s", i.IP, i.Word, i)
	fmt.Fprintf(&sb, " I=%03x SP=%x DT=%02x ST=%02x V=% x", s.I, s.SP, s.DT, s.ST, s.V[:])
	return sb.String()
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       Restart the program.\n")
	sb.WriteString(" F6       (re)load the program from disk and reset the cpu.\n")
	sb.WriteString(" CTRL+Q   Start/Stop program execution.\n")
	sb.WriteString(" CTRL+E   Perform a single execution step while stopped.\n")
	sb.WriteString(" CTRL+D   Enable/Disable debug trace output.\n")
	sb.WriteString("keypad:\n")
	sb.WriteString(" 1 2 3 4  ->  1 2 3 C\n")
	sb.WriteString(" Q W E R  ->  4 5 6 D\n")
	sb.WriteString(" A S D F  ->  7 8 9 E\n")
	sb.WriteString(" Z X C V  ->  A 0 B F")
	log.Println(sb.String())
}

// letterbox returns the largest viewport with the display's aspect
// ratio that fits in the given framebuffer, centered.
func letterbox(width, height int) (x, y, w, h int32) {
	w = int32(width)
	h = int32(width * arch.DisplayHeight / arch.DisplayWidth)

	if int(h) > height {
		h = int32(height)
		w = int32(height * arch.DisplayWidth / arch.DisplayHeight)
	}

	x = (int32(width) - w) / 2
	y = (int32(height) - h) / 2
	return x, y, w, h
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f GHz", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
