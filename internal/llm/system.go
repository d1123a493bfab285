package llm

import (
	"embed"
	"strings"

	"github.com/joestump/scribo/internal/catalog"
)

//go:embed system/*.txt
var systemFS embed.FS

// SystemPrompt returns the fixed instructions sent ahead of every prompt for
// kind, or "" for an unknown kind.
func SystemPrompt(kind catalog.Kind) string {
	b, err := systemFS.ReadFile("system/" + string(kind) + ".txt")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
