package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Diego Rossi
Software Engineer at Example S.p.A.
Milano, Italia

Experienced backend developer with a focus on distributed systems,
APIs and developer tooling. Ten years across fintech and logistics.`

func TestFromUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  string
	}{
		{
			name:     "plain text file",
			filename: "resume.txt",
			data:     []byte(sampleResumeText),
		},
		{
			name:     "markdown file",
			filename: "Profile.MD",
			data:     []byte(sampleResumeText),
		},
		{
			name:     "html file",
			filename: "profile.html",
			data:     []byte("<html><body><main><p>" + sampleResumeText + "</p></main></body></html>"),
		},
		{
			name:     "unsupported extension",
			filename: "resume.docx",
			data:     []byte(sampleResumeText),
			wantErr:  "unsupported file type",
		},
		{
			name:     "no extension",
			filename: "resume",
			data:     []byte(sampleResumeText),
			wantErr:  "unsupported file type",
		},
		{
			name:     "too little text",
			filename: "resume.txt",
			data:     []byte("Diego Rossi"),
			wantErr:  "file appears empty or unreadable",
		},
		{
			name:     "corrupt pdf",
			filename: "resume.pdf",
			data:     []byte("not a pdf at all"),
			wantErr:  "not a readable PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := FromUpload(tt.filename, tt.data)
			if tt.wantErr != "" {
				var ue *UnreadableError
				require.ErrorAs(t, err, &ue)
				assert.Equal(t, tt.filename, ue.Filename)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, text, "Diego Rossi")
			assert.GreaterOrEqual(t, len(text), MinContentChars)
		})
	}
}

func TestFromText(t *testing.T) {
	t.Run("valid pasted text", func(t *testing.T) {
		text, err := FromText("  " + sampleResumeText + "  ")
		require.NoError(t, err)
		assert.Equal(t, CleanText(sampleResumeText), text)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := FromText("Diego Rossi, engineer")
		var ue *UnreadableError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "pasted text", ue.Filename)
	})
}

func TestExtractHTMLTextStripsChrome(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | Sign in</nav>
		<main><h1>Diego Rossi</h1><p>` + sampleResumeText + `</p></main>
		<script>track();</script>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Diego Rossi")
	assert.NotContains(t, text, "Sign in")
	assert.NotContains(t, text, "track();")
	assert.NotContains(t, text, "Copyright")
	assert.False(t, strings.Contains(text, "<"), "markup removed")
}
