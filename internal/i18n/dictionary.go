// Package i18n provides the fixed set of supported display languages and the
// section-label dictionary every template sources its headings from.
// Templates never hard-code a heading in one language.
package i18n

// Language is one of the supported display/output languages.
type Language string

// The supported display languages. DefaultLanguage is used when a request
// names anything outside this set: unsupported values fail closed instead of
// silently producing untranslated output.
const (
	Italian Language = "Italiano"
	English Language = "English"
	Spanish Language = "Español"
	French  Language = "Français"
	German  Language = "Deutsch"

	DefaultLanguage = Italian
)

// Labels holds the section headings of a resume in one language.
type Labels struct {
	Contact        string
	Summary        string
	Experience     string
	Education      string
	Certifications string
	Skills         string
	Languages      string
}

var dictionary = map[Language]Labels{
	Italian: {
		Contact:        "Contatti",
		Summary:        "Profilo",
		Experience:     "Esperienza Lavorativa",
		Education:      "Formazione",
		Certifications: "Certificazioni",
		Skills:         "Competenze",
		Languages:      "Lingue",
	},
	English: {
		Contact:        "Contact",
		Summary:        "Profile",
		Experience:     "Work Experience",
		Education:      "Education",
		Certifications: "Certifications",
		Skills:         "Skills",
		Languages:      "Languages",
	},
	Spanish: {
		Contact:        "Contacto",
		Summary:        "Perfil",
		Experience:     "Experiencia Laboral",
		Education:      "Educación",
		Certifications: "Certificaciones",
		Skills:         "Habilidades",
		Languages:      "Idiomas",
	},
	French: {
		Contact:        "Contact",
		Summary:        "Profil",
		Experience:     "Expérience Professionnelle",
		Education:      "Formation",
		Certifications: "Certifications",
		Skills:         "Compétences",
		Languages:      "Langues",
	},
	German: {
		Contact:        "Kontakt",
		Summary:        "Profil",
		Experience:     "Berufserfahrung",
		Education:      "Ausbildung",
		Certifications: "Zertifizierungen",
		Skills:         "Fähigkeiten",
		Languages:      "Sprachen",
	},
}

// Supported returns the display languages in presentation order.
func Supported() []Language {
	return []Language{Italian, English, Spanish, French, German}
}

// Parse maps a raw language value to a supported Language, falling back to
// the default for anything unknown.
func Parse(raw string) Language {
	lang := Language(raw)
	if _, ok := dictionary[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// LabelsFor returns the section headings for a language, falling back to the
// default language's headings for unknown values.
func LabelsFor(lang Language) Labels {
	if labels, ok := dictionary[lang]; ok {
		return labels
	}
	return dictionary[DefaultLanguage]
}
