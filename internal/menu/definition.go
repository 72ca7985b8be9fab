package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDefinition is returned when a definition file lists no items.
var ErrEmptyDefinition = errors.New("menu definition has no items")

// Definition is the on-disk description of a context menu.
type Definition struct {
	Title string           `yaml:"title,omitempty"`
	Items []DefinitionItem `yaml:"items"`
}

// DefinitionItem is one action or separator in a definition file. Separator
// holds the submenu path the separator belongs to ("" for the top level).
type DefinitionItem struct {
	Path      string  `yaml:"path,omitempty"`
	Separator *string `yaml:"separator,omitempty"`
	Command   string  `yaml:"command,omitempty"`
	Value     string  `yaml:"value,omitempty"`
	Disabled  bool    `yaml:"disabled,omitempty"`
	Checked   bool    `yaml:"checked,omitempty"`
	Hidden    bool    `yaml:"hidden,omitempty"`
}

// Selection is what an activated definition item reports back.
type Selection struct {
	Path    string
	Command string
	Value   string
}

// Output returns the text printed for the selection: its value, or its path
// when no value was configured.
func (s Selection) Output() string {
	if s.Value != "" {
		return s.Value
	}
	return s.Path
}

// IsSeparator reports whether the item describes a separator.
func (i DefinitionItem) IsSeparator() bool {
	return i.Separator != nil
}

// Status derives the entry status from the item flags.
func (i DefinitionItem) Status() Status {
	if i.Hidden {
		return StatusHidden
	}
	status := StatusNormal
	if i.Disabled {
		status |= StatusDisabled
	}
	if i.Checked {
		status |= StatusChecked
	}
	return status
}

// LoadDefinition reads and validates a definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu definition: %w", err)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseDefinition decodes YAML into a definition. Unknown keys are rejected
// and every entry must build into a valid tree.
func ParseDefinition(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("parse menu definition: %w", err)
	}
	if len(def.Items) == 0 {
		return nil, ErrEmptyDefinition
	}
	for idx, item := range def.Items {
		if item.IsSeparator() && item.Path != "" {
			return nil, fmt.Errorf("item %d: separator entries take no path", idx)
		}
	}
	if _, err := Build(def.Entries(nil)); err != nil {
		return nil, err
	}
	return &def, nil
}

// Entries converts the definition into builder entries. onSelect, when set,
// is called with the item's selection whenever its action is invoked.
func (d *Definition) Entries(onSelect func(Selection)) []Entry {
	if d == nil {
		return nil
	}
	entries := make([]Entry, 0, len(d.Items))
	for _, item := range d.Items {
		if item.IsSeparator() {
			entries = append(entries, Entry{Path: *item.Separator, Kind: KindSeparator})
			continue
		}
		sel := Selection{Path: item.Path, Command: item.Command, Value: item.Value}
		entry := Entry{Path: item.Path, Kind: KindAction, Status: item.Status()}
		if onSelect != nil {
			entry.Invoke = func() { onSelect(sel) }
		}
		entries = append(entries, entry)
	}
	return entries
}
