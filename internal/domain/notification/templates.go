package notification

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v2"
)

//go:embed templates.yaml
var templatesYAML []byte

var templates map[Type]string

func init() {
	raw := map[string]string{}
	if err := yaml.Unmarshal(templatesYAML, &raw); err != nil {
		log.Fatalf("Failed to parse notification templates: %v", err)
	}
	templates = make(map[Type]string, len(raw))
	for k, v := range raw {
		templates[Type(k)] = v
	}
}

// RenderMessage produces the canonical human-readable message for a
// notification type, parameterized by the project name.
func RenderMessage(t Type, projectName string) (string, bool) {
	tmpl, ok := templates[t]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(tmpl, projectName), true
}
