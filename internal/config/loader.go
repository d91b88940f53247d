// Package config loads form definition files for the formwire CLI.
//
// A form file describes an HTML-style form in YAML or JSON: its action
// URL, declared method, enctype, and controls. File controls reference
// a path whose contents are read relative to the form file's directory.
//
// Example:
//
//	action: https://api.example.com/upload
//	method: post
//	controls:
//	  - name: title
//	    type: text
//	    value: quarterly report
//	  - name: doc
//	    type: file
//	    path: ./report.pdf
//	  - name: tags
//	    type: select-multiple
//	    options:
//	      - value: finance
//	        selected: true
//	      - value: draft
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/formwire/formwire/form"
)

// FormFile is the on-disk form definition.
type FormFile struct {
	Action   string        `yaml:"action" json:"action"`
	Method   string        `yaml:"method" json:"method"`
	Enctype  string        `yaml:"enctype,omitempty" json:"enctype,omitempty"`
	Controls []ControlSpec `yaml:"controls" json:"controls"`
}

// ControlSpec is one control in a form file. File controls name a path
// instead of an inline value.
type ControlSpec struct {
	Name    string       `yaml:"name" json:"name"`
	Type    string       `yaml:"type,omitempty" json:"type,omitempty"`
	Value   string       `yaml:"value,omitempty" json:"value,omitempty"`
	Path    string       `yaml:"path,omitempty" json:"path,omitempty"`
	Options []OptionSpec `yaml:"options,omitempty" json:"options,omitempty"`
}

// OptionSpec is one option of a select-multiple control.
type OptionSpec struct {
	Value    string `yaml:"value" json:"value"`
	Selected bool   `yaml:"selected,omitempty" json:"selected,omitempty"`
}

// Load reads and parses a form file. The format is determined by
// extension: .json is JSON, everything else is parsed as YAML.
func Load(path string) (*FormFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	return Parse(data, path)
}

// Parse parses form file data. The format is determined by the file
// extension in path, defaulting to YAML.
func Parse(data []byte, path string) (*FormFile, error) {
	var ff FormFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &ff); err != nil {
			return nil, fmt.Errorf("failed to parse JSON form file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &ff); err != nil {
			return nil, fmt.Errorf("failed to parse YAML form file: %w", err)
		}
	}

	return &ff, nil
}

// ToForm materializes a form.Form from a definition. File control
// contents are read relative to baseDir, which is normally the form
// file's directory.
func ToForm(ff *FormFile, baseDir string) (*form.Form, error) {
	f := &form.Form{
		Action:  ff.Action,
		Method:  ff.Method,
		Enctype: ff.Enctype,
	}

	for _, spec := range ff.Controls {
		control := form.Control{
			Name:  spec.Name,
			Type:  spec.Type,
			Value: spec.Value,
		}

		if spec.Type == form.TypeFile {
			filePath := spec.Path
			if !filepath.IsAbs(filePath) && baseDir != "" {
				filePath = filepath.Join(baseDir, filePath)
			}
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read file control %q: %w", spec.Name, err)
			}
			control.Filename = filepath.Base(filePath)
			control.Content = content
		}

		for _, opt := range spec.Options {
			control.Options = append(control.Options, form.Option{
				Value:    opt.Value,
				Selected: opt.Selected,
			})
		}

		f.Controls = append(f.Controls, control)
	}

	return f, nil
}
