package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrTemplateID is returned for a template id that is empty or not a
	// lowercase slug.
	ErrTemplateID = errors.New("template id must contain only lowercase alphanumeric characters and hyphens, and must not start or end with a hyphen")

	// templateIDPattern matches a single lowercase alphanumeric character or a
	// string of lowercase alphanumeric characters and hyphens that does not
	// start or end with a hyphen. Ids travel in URLs and form values.
	templateIDPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
)

// ValidateTemplateID checks id against the template id format.
func ValidateTemplateID(id string) error {
	if !templateIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrTemplateID, id)
	}
	return nil
}

// validateTemplates checks every template of c: well-formed, unique ids and
// a non-empty prompt.
func validateTemplates(c ToolConfig) error {
	seen := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if err := ValidateTemplateID(t.ID); err != nil {
			return fmt.Errorf("%s: %w", c.Kind, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("%s: duplicate template id %q", c.Kind, t.ID)
		}
		seen[t.ID] = true
		if t.Prompt == "" {
			return fmt.Errorf("%s: template %q has no prompt", c.Kind, t.ID)
		}
	}
	return nil
}
