package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		variables map[string]string
		expected  string
	}{
		{
			name:      "replaces single placeholder",
			content:   "Hello {{name}}!",
			variables: map[string]string{"name": "Alice"},
			expected:  "Hello Alice!",
		},
		{
			name:      "replaces repeated placeholder everywhere",
			content:   "{{name}} and {{name}}",
			variables: map[string]string{"name": "Bob"},
			expected:  "Bob and Bob",
		},
		{
			name:      "keeps unknown placeholder verbatim",
			content:   "Order {{order_id}} for {{name}}",
			variables: map[string]string{"name": "Carol"},
			expected:  "Order {{order_id}} for Carol",
		},
		{
			name:      "tolerates whitespace inside braces",
			content:   "Hi {{ name }}",
			variables: map[string]string{"name": "Dave"},
			expected:  "Hi Dave",
		},
		{
			name:      "nil variables leave content untouched",
			content:   "Hi {{name}}",
			variables: nil,
			expected:  "Hi {{name}}",
		},
		{
			name:      "empty content stays empty",
			content:   "",
			variables: map[string]string{"name": "Eve"},
			expected:  "",
		},
		{
			name:      "empty value substitutes empty string",
			content:   "Hi {{name}}!",
			variables: map[string]string{"name": ""},
			expected:  "Hi !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Render(tt.content, tt.variables))
		})
	}
}
