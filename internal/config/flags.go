package config

import (
	"flag"
	"fmt"
	"io"
)

// Flags are the command-line overrides. Zero values mean "not given".
type Flags struct {
	Config   string
	Debug    bool
	Width    int
	Height   int
	UI       string
	VSync    bool
	NoVSync  bool
	AutoPlay bool
	Version  bool
}

// ParseFlags parses args (without the program name). It returns
// flag.ErrHelp for -h/--help after printing usage to out, and an error
// for malformed or out-of-range values before anything else happens.
func ParseFlags(args []string, out io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("cubeview", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&f.Config, "config", "", "path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "window width in points (default 1280)")
	fs.IntVar(&f.Width, "w", 0, "shorthand for --width")
	fs.IntVar(&f.Height, "height", 0, "window height in points (default 720)")
	fs.StringVar(&f.UI, "ui", "", "user interface: native or imgui")
	fs.BoolVar(&f.VSync, "vsync", false, "wait for vertical sync when presenting")
	fs.BoolVar(&f.NoVSync, "no-vsync", false, "present without waiting for vertical sync (wins over -vsync)")
	fs.BoolVar(&f.AutoPlay, "play", false, "start with the animation playing")
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: cubeview [flags]\n\nA spinning cube inside an immediate-mode UI.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if f.UI != "" && f.UI != BackendNative && f.UI != BackendImGui {
		return nil, fmt.Errorf("invalid value %q for -ui: want %s or %s", f.UI, BackendNative, BackendImGui)
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "width", "w":
			if f.Width <= 0 {
				err = fmt.Errorf("invalid value %d for -%s: must be positive", f.Width, fl.Name)
			}
		case "height":
			if f.Height <= 0 {
				err = fmt.Errorf("invalid value %d for -height: must be positive", f.Height)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// apply writes the given overrides into cfg.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.UI != "" {
		cfg.UI.Backend = f.UI
	}
	if f.VSync {
		cfg.Window.VSync = true
	}
	if f.NoVSync {
		cfg.Window.VSync = false
	}
	if f.AutoPlay {
		cfg.Animation.AutoPlay = true
	}
}
