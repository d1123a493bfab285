// Package catalog is the static registry of content tools: the templates,
// platforms, durations and audiences offered for each kind of content.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the content-generation tools.
type Kind string

const (
	Script  Kind = "script"
	Title   Kind = "title"
	Caption Kind = "caption"
	Hashtag Kind = "hashtag"
	Ideas   Kind = "ideas"
)

// ErrUnknownKind is returned by ParseKind for names outside the enumeration.
var ErrUnknownKind = errors.New("unknown tool kind")

// Kinds lists every tool in navigation order.
func Kinds() []Kind {
	return []Kind{Script, Title, Caption, Hashtag, Ideas}
}

// ParseKind converts a tool name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Script, Title, Caption, Hashtag, Ideas:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Endpoint is the backend route that generates content for k.
func (k Kind) Endpoint() string {
	if k == Ideas {
		return "/generateidea"
	}
	return "/generate" + string(k)
}

// Label is the capitalized name used in page headings and exports.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Template is a named prompt pattern for a tool.
type Template struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// ToolConfig holds everything the form offers for one tool.
type ToolConfig struct {
	Kind          Kind       `json:"kind"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Description   string     `json:"description"`
	DurationLabel string     `json:"duration_label"`
	Templates     []Template `json:"templates"`
	Platforms     []string   `json:"platforms"`
	Durations     []string   `json:"durations"`
	Audiences     []string   `json:"audiences"`
}

// Template returns the template with the given id, if the tool has one.
func (c ToolConfig) Template(id string) (Template, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Registry maps each Kind to its ToolConfig. It is never modified after
// construction; accessors hand out copies.
type Registry struct {
	tools map[Kind]ToolConfig
}

// NewRegistry builds a registry from the given configs. Every Kind must be
// present exactly once.
func NewRegistry(configs ...ToolConfig) (*Registry, error) {
	tools := make(map[Kind]ToolConfig, len(configs))
	for _, c := range configs {
		if _, err := ParseKind(string(c.Kind)); err != nil {
			return nil, err
		}
		if _, dup := tools[c.Kind]; dup {
			return nil, fmt.Errorf("duplicate config for %q", c.Kind)
		}
		if err := validateTemplates(c); err != nil {
			return nil, err
		}
		tools[c.Kind] = clone(c)
	}
	for _, k := range Kinds() {
		if _, ok := tools[k]; !ok {
			return nil, fmt.Errorf("missing config for %q", k)
		}
	}
	return &Registry{tools: tools}, nil
}

// Tool returns the config for k.
func (r *Registry) Tool(k Kind) (ToolConfig, bool) {
	c, ok := r.tools[k]
	if !ok {
		return ToolConfig{}, false
	}
	return clone(c), true
}

// Lookup finds a template by id within the tool k.
func (r *Registry) Lookup(k Kind, templateID string) (Template, bool) {
	c, ok := r.tools[k]
	if !ok {
		return Template{}, false
	}
	return c.Template(templateID)
}

// Tools returns all configs in navigation order.
func (r *Registry) Tools() []ToolConfig {
	out := make([]ToolConfig, 0, len(r.tools))
	for _, k := range Kinds() {
		out = append(out, clone(r.tools[k]))
	}
	return out
}

func clone(c ToolConfig) ToolConfig {
	c.Templates = append([]Template(nil), c.Templates...)
	c.Platforms = append([]string(nil), c.Platforms...)
	c.Durations = append([]string(nil), c.Durations...)
	c.Audiences = append([]string(nil), c.Audiences...)
	return c
}
