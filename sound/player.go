package sound

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/katalvlaran/cmcutils/internal/logx"
)

// FilePlaceholder in Player.Args is replaced with Player.File. When no
// argument carries it, File is appended as the last argument.
const FilePlaceholder = "{file}"

// Runner starts name with args and returns without waiting. The returned
// wait function blocks until the process exits.
type Runner func(ctx context.Context, name string, args ...string) (wait func() error, err error)

// Player is an external audio command bound to one sound file.
type Player struct {
	Command string
	Args    []string
	File    string

	run Runner
}

// Option customizes a Player built by PlayerFor or Default.
type Option func(*Player)

// WithRunner replaces the process starter. Panics on nil.
func WithRunner(r Runner) Option {
	if r == nil {
		panic("sound: WithRunner(nil)")
	}
	return func(p *Player) { p.run = r }
}

// WithFile points the player at another sound file.
func WithFile(path string) Option {
	return func(p *Player) { p.File = path }
}

// WithCommand replaces the player command and its arguments.
func WithCommand(command string, args ...string) Option {
	return func(p *Player) {
		p.Command = command
		p.Args = append([]string(nil), args...)
	}
}

var platforms = map[string]Player{
	"darwin": {
		Command: "afplay",
		File:    "/System/Library/Sounds/Glass.aiff",
	},
	"linux": {
		Command: "paplay",
		File:    "/usr/share/sounds/freedesktop/stereo/complete.oga",
	},
	"windows": {
		Command: "powershell",
		Args: []string{
			"-NoProfile", "-NonInteractive", "-Command",
			"(New-Object Media.SoundPlayer '" + FilePlaceholder + "').PlaySync()",
		},
		File: `C:\Windows\Media\chimes.wav`,
	},
}

// PlayerFor returns the stock player for goos (a runtime.GOOS value),
// with opts applied on top.
func PlayerFor(goos string, opts ...Option) (*Player, error) {
	base, ok := platforms[goos]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
	p := &Player{
		Command: base.Command,
		Args:    append([]string(nil), base.Args...),
		File:    base.File,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Default returns the stock player for the running OS.
func Default(opts ...Option) (*Player, error) {
	return PlayerFor(runtime.GOOS, opts...)
}

// Argv returns the arguments passed to Command.
func (p *Player) Argv() []string {
	out := make([]string, 0, len(p.Args)+1)
	substituted := false
	for _, a := range p.Args {
		if strings.Contains(a, FilePlaceholder) {
			a = strings.ReplaceAll(a, FilePlaceholder, p.File)
			substituted = true
		}
		out = append(out, a)
	}
	if !substituted && p.File != "" {
		out = append(out, p.File)
	}
	return out
}

// Play starts the player and returns once the process is running. The
// process is reaped in the background and its exit status is only logged.
// Cancelling ctx kills a player that is still running.
func (p *Player) Play(ctx context.Context) error {
	if p == nil || p.Command == "" {
		return ErrNoCommand
	}
	run := p.run
	if run == nil {
		run = startProcess
	}
	argv := p.Argv()
	wait, err := run(ctx, p.Command, argv...)
	if err != nil {
		return fmt.Errorf("sound: start %s: %w", p.Command, err)
	}

	lg := logx.For("sound").WithField("command", p.Command)
	go func() {
		if err := wait(); err != nil {
			lg.WithError(err).Debug("player exited")
			return
		}
		lg.Debug("player finished")
	}()
	return nil
}

// startProcess is the default Runner. It is a variable so tests in this
// package never spawn a real player.
var startProcess Runner = func(ctx context.Context, name string, args ...string) (func() error, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

// Play fires the stock alert for the running OS and ignores every failure.
func Play() {
	p, err := Default()
	if err == nil {
		err = p.Play(context.Background())
	}
	if err != nil {
		logx.For("sound").WithError(err).Debug("alert not played")
	}
}
