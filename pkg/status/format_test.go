package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		changed      bool
		replacements int
		err          error
		want         string
		description  string
	}{
		{
			name:         "changed_file",
			path:         "src/components/button.css",
			changed:      true,
			replacements: 3,
			want:         "✅ src/components/button.css: 3 changes made",
			description:  "should show change marker and count for rewritten files",
		},
		{
			name:        "skipped_file",
			path:        "src/components/plain.css",
			changed:     false,
			want:        "⏭️  src/components/plain.css: No changes needed",
			description: "should show skip marker for untouched files",
		},
		{
			name:        "failed_file",
			path:        "src/styles/dark-mode.css",
			err:         errors.New("permission denied"),
			want:        "❌ src/styles/dark-mode.css: Error - permission denied",
			description: "should show error marker with the underlying message",
		},
	}

	formatter := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatFileChange(tt.path, tt.changed, tt.replacements, tt.err)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

func TestDefaultFileFormatter_FormatSummary(t *testing.T) {
	formatter := NewDefaultFileFormatter()

	assert.Equal(t, "nothing to process", formatter.FormatSummary(0, 0))
	assert.Equal(t, "5 files processed, 2 changed", formatter.FormatSummary(5, 2))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	formatter := NewDefaultFileFormatter()

	assert.Empty(t, formatter.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", formatter.FormatError(errors.New("boom")))
}
