package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscirocco/cvarchitect/internal/types"
)

func exportRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			FullName:    "Diego Rossi",
			Email:       "diego@example.com",
			Phone:       "+39 333 1234567",
			Location:    "Milano, Italia",
			LinkedinURL: "https://linkedin.com/in/diegorossi",
			Summary:     "Backend engineer.",
		},
		WorkExperience: []types.WorkExperience{
			{ID: "exp-1", Title: "Staff Engineer", Company: "Example S.p.A.", StartDate: "Jan 2021", EndDate: "", Visible: true, Description: []string{"Led the platform team"}},
			{ID: "exp-2", Title: "Hidden Role", Company: "Secret", StartDate: "2010", EndDate: "2012", Visible: false},
		},
		Education: []types.Education{
			{ID: "edu-1", Degree: "Laurea in Informatica", School: "Politecnico di Milano", StartDate: "2009", EndDate: "2013", Visible: true},
		},
		Skills: []types.LabeledToggle{
			{Name: "Go", Visible: true},
			{Name: "COBOL", Visible: false},
			{Name: "Kubernetes", Visible: true},
		},
		Languages: []types.LabeledToggle{
			{Name: "Italiano (Madrelingua)", Visible: true},
		},
		Certifications: []types.LabeledToggle{
			{Name: "CKA", Visible: true},
		},
	}
}

func TestToText(t *testing.T) {
	text := string(ToText(exportRecord()))

	assert.True(t, strings.HasPrefix(text, "Diego Rossi\n"), "name on the first line")
	assert.Contains(t, text, "diego@example.com | +39 333 1234567 | Milano, Italia")
	assert.Contains(t, text, "LinkedIn Profile")
	assert.Contains(t, text, "\nAbout:\nBackend engineer.")

	assert.Contains(t, text, "WORK EXPERIENCE\n=================\n")
	assert.Contains(t, text, "Staff Engineer at Example S.p.A.")
	assert.Contains(t, text, "Jan 2021 - Present", "open-ended roles show Present")
	assert.Contains(t, text, " - Led the platform team")
	assert.NotContains(t, text, "Hidden Role")

	assert.Contains(t, text, "EDUCATION\n=================\nPolitecnico di Milano - Laurea in Informatica\n2009 - 2013")
	assert.Contains(t, text, "SKILLS\n=================\nGo, Kubernetes")
	assert.NotContains(t, text, "COBOL")
	assert.Contains(t, text, "LANGUAGES\n=================\nItaliano (Madrelingua)")
	assert.Contains(t, text, "CERTIFICATIONS\n=================\nCKA")
}

func TestToTextOmitsEmptySections(t *testing.T) {
	record := exportRecord()
	record.Certifications = nil
	record.Skills[0].Visible = false
	record.Skills[2].Visible = false

	text := string(ToText(record))
	assert.NotContains(t, text, "CERTIFICATIONS")
	assert.NotContains(t, text, "SKILLS")
	assert.Contains(t, text, "LANGUAGES")
}

func TestToTextNoLinkedin(t *testing.T) {
	record := exportRecord()
	record.PersonalInfo.LinkedinURL = ""
	assert.NotContains(t, string(ToText(record)), "LinkedIn Profile")
}

func TestToJSONRoundTrip(t *testing.T) {
	record := exportRecord()
	data, err := ToJSON(record)
	require.NoError(t, err)

	var restored types.ResumeRecord
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *record, restored, "visibility flags and hidden entries survive")
	assert.False(t, restored.Skills[1].Visible)
}

func TestToDocx(t *testing.T) {
	data, err := ToDocx(exportRecord())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "PK", string(data[:2]), "docx is a zip container")
}

func TestBytes(t *testing.T) {
	record := exportRecord()
	for _, format := range Formats {
		data, err := Bytes(record, format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, data, format)
		assert.NotEmpty(t, ContentType(format), format)
	}

	_, err := Bytes(record, "xml")
	assert.ErrorContains(t, err, "unsupported export format")
	assert.Empty(t, ContentType("xml"))
}

func TestExportAll(t *testing.T) {
	out, err := ExportAll(context.Background(), exportRecord())
	require.NoError(t, err)
	require.Len(t, out, len(Formats))
	for _, format := range Formats {
		assert.NotEmpty(t, out[format], format)
	}
}
