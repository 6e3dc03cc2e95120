package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	formbind "github.com/reoring/formbind"
	"github.com/reoring/formbind/config"
	"github.com/reoring/formbind/dom"
)

// script describes a form and the user actions to replay against it.
//
//	controls:
//	  - id: email
//	    type: text
//	    name: email
//	    value: Enter Email
//	  - id: color
//	    tag: select
//	    name: color
//	    options: [red, green]
//	actions:
//	  - {control: email, do: focus}
//	  - {control: email, do: type, text: a@b.c}
//	  - {control: color, do: select, value: green}
type script struct {
	Controls []controlSpec `yaml:"controls"`
	Actions  []action      `yaml:"actions"`
}

type controlSpec struct {
	ID      string   `yaml:"id"`
	Tag     string   `yaml:"tag"`
	Type    string   `yaml:"type"`
	Name    string   `yaml:"name"`
	Value   string   `yaml:"value"`
	Class   string   `yaml:"class"`
	Checked bool     `yaml:"checked"`
	Options []string `yaml:"options"`
}

type action struct {
	Control string `yaml:"control"`
	Do      string `yaml:"do"`
	Text    string `yaml:"text"`
	Key     int    `yaml:"key"`
	Value   string `yaml:"value"`
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return &s, nil
}

// build creates the form elements in script order and indexes them by id,
// falling back to name when id is empty.
func (s *script) build() (*dom.Form, map[string]*dom.Element, error) {
	f := dom.NewForm()
	byID := make(map[string]*dom.Element, len(s.Controls))
	for i, c := range s.Controls {
		var e *dom.Element
		switch c.Tag {
		case "", "input":
			e = f.Input(c.Type, c.Name).WithChecked(c.Checked)
		case "select":
			e = f.Select(c.Name, c.Options...)
		case "textarea":
			e = f.TextArea(c.Name)
		default:
			return nil, nil, fmt.Errorf("controls[%d]: unknown tag %q", i, c.Tag)
		}
		if c.Value != "" {
			e.WithValue(c.Value)
		}
		e.WithClass(splitCSV(c.Class)...)
		id := c.ID
		if id == "" {
			id = c.Name
		}
		if _, dup := byID[id]; dup {
			return nil, nil, fmt.Errorf("controls[%d]: duplicate id %q", i, id)
		}
		byID[id] = e
	}
	return f, byID, nil
}

func (a action) apply(e *dom.Element) error {
	switch a.Do {
	case "focus":
		e.Focus()
	case "blur":
		e.Blur()
	case "click":
		e.Click()
	case "check":
		if !e.Checked() {
			e.Click()
		}
	case "type":
		e.Type(a.Text)
	case "key":
		e.Press(a.Key)
	case "select":
		if !e.Choose(a.Value) {
			return fmt.Errorf("no option %q", a.Value)
		}
	default:
		return fmt.Errorf("unknown action %q", a.Do)
	}
	return nil
}

func replayCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("replay", stderr)
	var file, scriptPath, settingsPath, out string
	var verbose bool
	fs.StringVar(&file, "f", "", "graph file (.json, .yaml, .yml, .hcl)")
	fs.StringVar(&scriptPath, "script", "", "replay script (YAML)")
	fs.StringVar(&settingsPath, "config", "", "binder settings (YAML)")
	fs.StringVar(&out, "o", "", "output file (default: stdout)")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if file == "" || scriptPath == "" {
		fs.Usage()
		return errUsage
	}
	log := newLogger(stderr, verbose)

	sc, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	form, byID, err := sc.build()
	if err != nil {
		return err
	}

	cfg := &config.File{}
	if settingsPath != "" {
		if cfg, err = config.Load(settingsPath); err != nil {
			return err
		}
	}

	return edit(file, out, stdout, func(root any) error {
		changes := 0
		listener := formbind.ChangeListenerFunc(func(address string) {
			changes++
			log.Info("change", "address", address, "pointer", formbind.Pointer(address))
		})
		s, err := cfg.Settings(root, listener, log)
		if err != nil {
			return err
		}
		b, err := formbind.NewWithSettings(s)
		if err != nil {
			return err
		}
		if err := b.BindAll(form.Controls()...); err != nil {
			return err
		}
		for i, a := range sc.Actions {
			e, ok := byID[a.Control]
			if !ok {
				return fmt.Errorf("actions[%d]: unknown control %q", i, a.Control)
			}
			if err := a.apply(e); err != nil {
				return fmt.Errorf("actions[%d]: %w", i, err)
			}
			log.Debug("applied", slog.Int("step", i), slog.String("do", a.Do), slog.String("control", a.Control))
		}
		log.Info("replay done", "actions", len(sc.Actions), "changes", changes)
		return nil
	})
}
