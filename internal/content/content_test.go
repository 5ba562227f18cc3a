package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Informasi Tentang Kematian di Dunia", c.Title)
	assert.NotEmpty(t, c.Image.Caption)
	assert.Len(t, c.Intro.Paragraphs, 2)
	assert.Equal(t, "Tahun", c.World.Slider)
	assert.Equal(t, "Penutup", c.Closing.Heading)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Informasi Tentang Kematian di Dunia", c.Title)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: Deaths Worldwide\ncountry:\n  heading: Causes in {country}\n"), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Deaths Worldwide", c.Title)
		assert.Equal(t, "Causes in {country}", c.Country.Heading)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("no title", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("intro:\n  heading: x\n"), 0o600))

		_, err := Load(path)
		assert.ErrorContains(t, err, "content has no title")
	})
}

func TestVarsExpand(t *testing.T) {
	v := Vars{FirstYear: 1990, LastYear: 2019, Year: 2019, TopN: 3, Country: "Indonesia", Cause: "Malaria"}

	assert.Equal(t, "Top 3 kasus kematian di dunia tahun 2019", v.Expand("Top {n} kasus kematian di dunia tahun {year}"))
	assert.Equal(t, "Penyebab Kematian di Indonesia Tahun 1990-2019", v.Expand("Penyebab Kematian di {country} Tahun {first}-{last}"))
	assert.Equal(t, []string{"Malaria", "plain"}, v.ExpandAll([]string{"{cause}", "plain"}))
}
