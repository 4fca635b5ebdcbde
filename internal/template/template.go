// Package template renders stored notification templates by substituting
// {{placeholder}} tokens with caller-supplied variables.
package template

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Render replaces every {{name}} token in content with variables[name].
// Tokens with no matching variable are left verbatim so that a missing
// value is visible in the delivered message instead of silently vanishing.
func Render(content string, variables map[string]string) string {
	if content == "" || len(variables) == 0 {
		return content
	}

	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := strings.TrimSpace(token[2 : len(token)-2])
		if value, ok := variables[name]; ok {
			return value
		}

		return token
	})
}
