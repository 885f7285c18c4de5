package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextNormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanTextPreservesBlankLines(t *testing.T) {
	input := "Software Engineer at Acme\nBuilt things\n\n\n\nData Analyst at Initech\nAnalyzed things"
	expected := "Software Engineer at Acme\nBuilt things\n\nData Analyst at Initech\nAnalyzed things"
	assert.Equal(t, expected, CleanText(input))
}

func TestCleanTextCollapsesSpaces(t *testing.T) {
	assert.Equal(t, "Skills: Python, SQL", CleanText("Skills:    Python,   SQL"))
}

func TestCleanTextKeepsBullets(t *testing.T) {
	input := "• Led a team of five\n- Shipped the product"
	assert.Equal(t, input, CleanText(input))
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n  \n"))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\r\n\r\nSkills: Python"), 0644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\n\nSkills: Python", text)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
		<nav>Home | Jobs</nav>
		<h1>Senior Software Engineer</h1>
		<p>We are looking for a senior engineer.</p>
		<ul><li>5+ years of experience</li><li>Python required</li></ul>
		<script>trackPageView()</script>
		<footer>Copyright</footer>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "5+ years of experience")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Copyright")
}
