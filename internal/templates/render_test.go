package templates

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscirocco/cvarchitect/internal/i18n"
	"github.com/dscirocco/cvarchitect/internal/types"
)

func renderRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			FullName: "Diego Rossi",
			Email:    "diego@example.com",
			Phone:    "+39 333 1234567",
			Location: "Milano, Italia",
			Summary:  "Backend engineer with ten years of experience.",
		},
		WorkExperience: []types.WorkExperience{
			{ID: "exp-1", Title: "Staff Engineer", Company: "Example S.p.A.", StartDate: "2021", EndDate: "", Visible: true, Description: []string{"Led the platform team"}},
			{ID: "exp-2", Title: "Senior Engineer", Company: "Acme", StartDate: "2018", EndDate: "2021", Visible: true},
			{ID: "exp-3", Title: "Engineer", Company: "Startup", StartDate: "2015", EndDate: "2018", Visible: true},
			{ID: "exp-4", Title: "Junior Engineer", Company: "First Job", StartDate: "2013", EndDate: "2015", Visible: true},
			{ID: "exp-5", Title: "Hidden Role", Company: "Secret", Visible: false},
		},
		Education: []types.Education{
			{ID: "edu-1", Degree: "Laurea in Informatica", School: "Politecnico di Milano", StartDate: "2009", EndDate: "2013", Visible: true},
		},
		Skills: []types.LabeledToggle{
			{Name: "Go", Visible: true},
			{Name: "Kubernetes", Visible: true},
			{Name: "COBOL", Visible: false},
		},
		Languages: []types.LabeledToggle{
			{Name: "Italiano (Madrelingua)", Visible: true},
			{Name: "English (Fluent)", Visible: true},
		},
		Certifications: []types.LabeledToggle{
			{Name: "CKA", Visible: true},
		},
	}
}

func renderDoc(t *testing.T, record *types.ResumeRecord, id string, variant Variant, lang i18n.Language) *goquery.Document {
	t.Helper()
	html, err := Render(record, id, variant, lang, "")
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderAllTemplateVariantPairs(t *testing.T) {
	for _, tpl := range Registry {
		for _, variant := range []Variant{Preview, Print} {
			t.Run(fmt.Sprintf("%s_%s", tpl.ID, variant), func(t *testing.T) {
				doc := renderDoc(t, renderRecord(), tpl.ID, variant, i18n.English)
				text := doc.Text()
				assert.Contains(t, text, "Diego Rossi")
				assert.Contains(t, text, "Staff Engineer")
				assert.Contains(t, text, "Politecnico di Milano")
				assert.Contains(t, text, "Go")
			})
		}
	}
}

func TestRenderTemplatesAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, tpl := range Registry {
		html, err := Render(renderRecord(), tpl.ID, Preview, i18n.English, "")
		require.NoError(t, err)
		for other, otherHTML := range seen {
			assert.NotEqual(t, otherHTML, string(html), "%s and %s must differ", tpl.ID, other)
		}
		seen[tpl.ID] = string(html)
	}
}

func TestRenderHiddenEntriesOmitted(t *testing.T) {
	doc := renderDoc(t, renderRecord(), "minimal", Preview, i18n.English)
	text := doc.Text()
	assert.NotContains(t, text, "Hidden Role")
	assert.NotContains(t, text, "COBOL")
	assert.Contains(t, text, "Kubernetes")
}

func TestRenderEmptySectionsOmitted(t *testing.T) {
	record := renderRecord()
	record.Certifications = nil
	record.Education = nil

	for _, tpl := range Registry {
		doc := renderDoc(t, record, tpl.ID, Preview, i18n.English)
		text := doc.Text()
		assert.NotContains(t, text, "Certifications", tpl.ID)
		assert.NotContains(t, text, "Education", tpl.ID)
		assert.Contains(t, text, "Work Experience", tpl.ID)
	}
}

func TestRenderSectionHeadingsFollowLanguage(t *testing.T) {
	tests := []struct {
		lang       i18n.Language
		experience string
	}{
		{i18n.Italian, "Esperienza Lavorativa"},
		{i18n.English, "Work Experience"},
		{i18n.German, "Berufserfahrung"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			doc := renderDoc(t, renderRecord(), "classic", Preview, tt.lang)
			assert.Contains(t, doc.Text(), tt.experience)
		})
	}
}

func TestRenderExecutivePrintCapsExperience(t *testing.T) {
	preview := renderDoc(t, renderRecord(), "executive", Preview, i18n.English)
	print := renderDoc(t, renderRecord(), "executive", Print, i18n.English)

	assert.Contains(t, preview.Text(), "Junior Engineer", "preview shows all visible entries")
	assert.NotContains(t, print.Text(), "Junior Engineer", "print keeps the first three")
	assert.Contains(t, print.Text(), "Engineer")
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	fallback, err := Render(renderRecord(), "does-not-exist", Preview, i18n.English, "")
	require.NoError(t, err)
	minimal, err := Render(renderRecord(), "minimal", Preview, i18n.English, "")
	require.NoError(t, err)
	assert.Equal(t, string(minimal), string(fallback))
}

func TestRenderUnknownVariant(t *testing.T) {
	_, err := Render(renderRecord(), "minimal", Variant("email"), i18n.English, "")
	var unknown *ErrUnknownVariant
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "email")
}

func TestRenderProfileImageDataURL(t *testing.T) {
	const dataURL = "data:image/png;base64,iVBORw0KGgo="
	html, err := Render(renderRecord(), "executive", Preview, i18n.English, dataURL)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(html), dataURL), "data URL must survive HTML escaping")
}

func TestBuildViewNilRecord(t *testing.T) {
	view := BuildView(nil, Get("minimal"), Preview, i18n.English, "")
	assert.Empty(t, view.FullName)
	assert.Empty(t, view.Experience)
	assert.Equal(t, "Work Experience", view.Labels.Experience)
}
