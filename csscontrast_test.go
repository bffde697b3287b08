package csscontrast

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<style>
:root {
  --text: #000000;
  --bg: #ffffff;
  --unused: #123;
}
</style>`), 0o644))

	var buf bytes.Buffer
	report, err := Run(Config{Root: dir}, &buf, OutputOptions{})
	require.NoError(t, err)

	path := filepath.Join(dir, "contrast-report.json")
	assert.FileExists(t, path)
	assert.Equal(t, path, report.OutputPath)

	out := buf.String()
	assert.Contains(t, out, "Contrast check complete. Report written to: "+path)
	assert.Contains(t, out, "- text on bg: ratio 21.0 — AA: true, AAA: true")
	assert.Contains(t, out, "--unused: #123")
}

func TestRun_OutputWriteFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.css"), []byte(":root { --text: #000; }"), 0o644))

	_, err := Run(Config{Root: dir, Output: filepath.Join("no", "such", "dir", "report.json")}, &bytes.Buffer{}, OutputOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing")
}

func TestCheck_DoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.css"), []byte(":root { --primary: #0d6efd; }"), 0o644))

	report, err := Check(Config{Root: dir})
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)
	assert.NoFileExists(t, filepath.Join(dir, "contrast-report.json"))
}
