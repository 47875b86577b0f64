// Package dataset loads the option lists the demo widgets select from. A
// dataset is a YAML document of groups; each group becomes a divider followed
// by its options.
package dataset

import (
	"fmt"
	"os"

	"github.com/ruminaider/selectbox/internal/menu"
	"go.yaml.in/yaml/v3"
)

// Option is one selectable value. The optional hint renders as a second line
// under the option, which is what gives menu entries varying heights.
type Option struct {
	Name string `yaml:"name"`
	Hint string `yaml:"hint,omitempty"`
}

// UnmarshalYAML accepts either the full mapping form or a bare scalar as a
// shorthand for an option without a hint.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Name = node.Value
		o.Hint = ""
		return nil
	}
	type plain Option
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = Option(p)
	return nil
}

// Group is a titled run of options. An empty title omits the divider.
type Group struct {
	Title   string   `yaml:"title"`
	Options []Option `yaml:"options"`
}

// Dataset is a named collection of option groups.
type Dataset struct {
	Name   string  `yaml:"name"`
	Groups []Group `yaml:"groups"`
}

// Parse parses dataset YAML bytes.
func Parse(data []byte) (Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("parsing dataset: %w", err)
	}
	return d, nil
}

// Load reads and parses the dataset file at path.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Entries flattens the dataset into the widget's entry list: a divider per
// titled group followed by its options, in document order.
func (d Dataset) Entries() []menu.Entry[Option] {
	var entries []menu.Entry[Option]
	for _, g := range d.Groups {
		if g.Title != "" {
			entries = append(entries, menu.Divider[Option](g.Title))
		}
		for _, o := range g.Options {
			entries = append(entries, menu.Item(o))
		}
	}
	return entries
}

// Sample returns the built-in dataset used when no dataset file is
// configured.
func Sample() Dataset {
	return Dataset{
		Name: "languages",
		Groups: []Group{
			{
				Title: "Systems",
				Options: []Option{
					{Name: "C", Hint: "1972 · Bell Labs"},
					{Name: "C++"},
					{Name: "Rust", Hint: "2015 · Mozilla"},
					{Name: "Zig"},
				},
			},
			{
				Title: "Services",
				Options: []Option{
					{Name: "Go", Hint: "2012 · Google"},
					{Name: "Java"},
					{Name: "Kotlin"},
					{Name: "Erlang", Hint: "1986 · Ericsson"},
					{Name: "Elixir"},
				},
			},
			{
				Title: "Scripting",
				Options: []Option{
					{Name: "Python"},
					{Name: "Ruby"},
					{Name: "Lua", Hint: "1993 · PUC-Rio"},
					{Name: "Perl"},
				},
			},
		},
	}
}
