// Package prompt turns a tool selection and form fields into the final prompt
// sent to the generation endpoint.
package prompt

import (
	"sort"
	"strings"

	"github.com/joestump/scribo/internal/catalog"
)

// Placeholder tokens recognised in template patterns.
const (
	Topic    = "[TOPIC]"
	Platform = "[PLATFORM]"
	Duration = "[DURATION]"
	Audience = "[AUDIENCE]"
)

// Phrases substituted when the matching field is empty.
const (
	DefaultTopic    = "the given topic"
	DefaultPlatform = "the selected platform"
	DefaultDuration = "appropriate duration"
	DefaultAudience = "target audience"
)

// Fields are the free-text and selected values of the form.
type Fields struct {
	Topic    string
	Platform string
	Duration string
	Audience string
}

// Build returns the prompt for kind. With no template, or a template id the
// tool does not have, the raw topic is returned unchanged. Otherwise every
// occurrence of each placeholder is replaced.
func Build(reg *catalog.Registry, kind catalog.Kind, templateID string, f Fields) string {
	if templateID == "" {
		return f.Topic
	}
	tmpl, ok := reg.Lookup(kind, templateID)
	if !ok {
		return f.Topic
	}
	return Render(tmpl.Prompt, f)
}

// Render substitutes the fields into pattern.
func Render(pattern string, f Fields) string {
	r := strings.NewReplacer(
		Topic, or(f.Topic, DefaultTopic),
		Platform, or(f.Platform, DefaultPlatform),
		Duration, or(f.Duration, DefaultDuration),
		Audience, or(f.Audience, DefaultAudience),
	)
	return r.Replace(pattern)
}

// Placeholders lists the distinct placeholders found in pattern, in the
// order they first appear.
func Placeholders(pattern string) []string {
	type hit struct {
		token string
		at    int
	}
	var hits []hit
	for _, tok := range []string{Topic, Platform, Duration, Audience} {
		if i := strings.Index(pattern, tok); i >= 0 {
			hits = append(hits, hit{tok, i})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.token
	}
	return out
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
