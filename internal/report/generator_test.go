package report

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		parsed, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFormat("pdf")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, ".txt", FormatText.Extension())
	assert.Equal(t, ".xml", FormatJUnit.Extension())
	assert.Equal(t, ".html", FormatHTML.Extension())
}

func TestGenerator_Generate(t *testing.T) {
	var (
		gen = NewGenerator(logrus.New())
		doc = sampleDocument()
	)

	text, err := gen.Generate(doc, FormatText, plainOptions())
	require.NoError(t, err)
	assert.Equal(t, Text(doc, plainOptions()), text)

	xml, err := gen.Generate(doc, FormatJUnit, nil)
	require.NoError(t, err)
	assert.Equal(t, JUnit(doc, nil), xml)

	page, err := gen.Generate(doc, FormatHTML, nil)
	require.NoError(t, err)
	assert.Contains(t, page, "<pre>")

	_, err = gen.Generate(doc, Format("pdf"), nil)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
