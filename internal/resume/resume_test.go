package resume

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/resume/internal/career"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, r.Name)
	assert.NotEmpty(t, r.Work)
	assert.NotEmpty(t, r.Education)

	_, err = career.ParseDate(r.Career.Start)
	require.NoError(t, err)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	src := "name: A\ncareer:\n  start: \"2022-05-01\"\nhobbies: [pool]\n"
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hobbies")
}

func TestDecodeRejectsMultipleDocuments(t *testing.T) {
	src := "name: A\ncareer:\n  start: \"2022-05-01\"\n---\nname: B\n"
	_, err := Decode(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one YAML document")
}

func TestDecodeValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty document"},
		{"missing name", "career:\n  start: \"2022-05-01\"\n", "name is required"},
		{"bad start", "name: A\ncareer:\n  start: \"2022.05.01\"\n", "career.start"},
		{"missing start", "name: A\n", "career.start"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := Decode(strings.NewReader("name: A\ncareer:\n  start: nope\n"))
	require.ErrorIs(t, err, career.ErrMalformedDate)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Test\ncareer:\n  start: \"2021-01-01\"\n"), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", r.Name)
	assert.Equal(t, "2021-01-01", r.Career.Start)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestAboutHTML(t *testing.T) {
	r := &Resume{About: "hello **world**\n\n- one\n- two\n"}
	html, err := r.AboutHTML()
	require.NoError(t, err)

	assert.Contains(t, string(html), "<strong>world</strong>")
	assert.Contains(t, string(html), "<li>one</li>")
}

func TestBanner(t *testing.T) {
	r := &Resume{Name: "김하늘", Headline: "백엔드 개발자", Email: "a@example.com"}
	b := r.Banner()

	assert.Contains(t, b, "김하늘 · 백엔드 개발자")
	assert.Contains(t, b, "a@example.com")
	assert.False(t, strings.HasPrefix(b, "\n"))

	color.NoColor = true
	var buf bytes.Buffer
	r.PrintBanner(&buf)
	assert.Equal(t, b, buf.String())
}
