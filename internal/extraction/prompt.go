package extraction

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxInputChars bounds the raw resume text sent upstream. LinkedIn exports
// can run to dozens of pages; everything past this point is cut to keep
// request cost and latency predictable.
const MaxInputChars = 30000

// targetSchema is the JSON shape the model is instructed to return. Skills,
// languages and certifications come back as plain strings; the normalizer
// turns them into toggle entries.
const targetSchema = `{
  "personal_info": {
    "fullName": "Name Surname",
    "email": "email@example.com",
    "phone": "+123...",
    "location": "City, Country",
    "linkedinUrl": "https://linkedin.com/in/...",
    "portfolioUrl": "https://...",
    "summary": "Professional summary..."
  },
  "work_experience": [
    {
      "title": "Job Title",
      "company": "Company Name",
      "location": "Location",
      "startDate": "MMM YYYY",
      "endDate": "MMM YYYY or Present",
      "description": ["Action verb + task + result (STAR method point 1)", "Point 2..."]
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "school": "School Name",
      "location": "Location",
      "startDate": "YYYY",
      "endDate": "YYYY"
    }
  ],
  "skills": ["Skill 1", "Skill 2"],
  "languages": ["Language 1", "Language 2"],
  "certifications": ["Certification 1"]
}`

// BuildPrompt assembles the structured-extraction prompt: role instruction,
// target language, the one-page length target, the target schema and finally
// the raw resume text (truncated to MaxInputChars).
func BuildPrompt(rawText, language string) string {
	if len(rawText) > MaxInputChars {
		// Cut on a rune boundary; a byte-level cut can leave invalid UTF-8,
		// which the provider rejects.
		cut := MaxInputChars
		for cut > 0 && !utf8.RuneStart(rawText[cut]) {
			cut--
		}
		rawText = rawText[:cut]
	}

	var sb strings.Builder
	sb.WriteString("You are an expert recruiter. Extract the data from the resume or LinkedIn profile text below and return ONLY a JSON object with the keys personal_info, work_experience, education, skills, languages, certifications.\n\n")
	fmt.Fprintf(&sb, "Write all descriptive content (summary, bullet points, degree descriptions) in %s, using the STAR method and action verbs. Never translate proper nouns: company names, school names and certification names stay exactly as written.\n\n", language)
	sb.WriteString(`The rendered document must fit one page, so respect these hard limits:
- summary: at most 200 characters.
- work_experience: the 3 most relevant positions, each with at most 2 bullet points of at most 100 characters. If a position has no detail in the source, write two generic, role-appropriate bullets; never invent concrete facts or numbers.
- education: at most 2 entries.
- skills: 12 to 15 skills, ordered from most to least relevant for the profile.
- languages: at most 4.
- certifications: at most 5.

The JSON must strictly follow this structure and must not contain data absent from the source:
`)
	sb.WriteString(targetSchema)
	sb.WriteString("\n\nDo not include markdown or backticks. Return only the raw JSON.\n\nResume text:\n")
	sb.WriteString(rawText)
	return sb.String()
}
