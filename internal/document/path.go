package document

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dscirocco/cvarchitect/internal/types"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z_]+)(?:\[(\d+)\])?$`)

type segment struct {
	name  string
	index int // -1 when the segment has no subscript
}

// parsePath splits "work_experience[2].description[0]" into typed segments.
func parsePath(path string) ([]segment, *PathError) {
	if path == "" {
		return nil, &PathError{Path: path, Message: "empty path"}
	}
	var segs []segment
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '.' {
			continue
		}
		raw := path[start:i]
		start = i + 1
		m := segmentRe.FindStringSubmatch(raw)
		if m == nil {
			return nil, &PathError{Path: path, Message: "malformed segment " + strconv.Quote(raw)}
		}
		idx := -1
		if m[2] != "" {
			idx, _ = strconv.Atoi(m[2])
		}
		segs = append(segs, segment{name: m[1], index: idx})
	}
	return segs, nil
}

// EditField replaces one scalar string leaf addressed by a dotted field path,
// for example "personal_info.summary" or "work_experience[2].description[0]".
// Sibling fields are never touched. Malformed paths and out-of-range indexes
// return a *PathError and leave the record unchanged.
func (sess *Session) EditField(path, value string) error {
	segs, perr := parsePath(path)
	if perr != nil {
		return perr
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	rec := sess.record

	fail := func(msg string) error { return &PathError{Path: path, Message: msg} }

	switch segs[0].name {
	case "personal_info":
		if len(segs) != 2 || segs[0].index >= 0 || segs[1].index >= 0 {
			return fail("personal_info fields are addressed as personal_info.<field>")
		}
		switch segs[1].name {
		case "fullName":
			rec.PersonalInfo.FullName = value
		case "email":
			rec.PersonalInfo.Email = value
		case "phone":
			rec.PersonalInfo.Phone = value
		case "location":
			rec.PersonalInfo.Location = value
		case "linkedinUrl":
			rec.PersonalInfo.LinkedinURL = value
		case "portfolioUrl":
			rec.PersonalInfo.PortfolioURL = value
		case "summary":
			rec.PersonalInfo.Summary = value
		default:
			return fail("unknown personal_info field " + segs[1].name)
		}
		return nil

	case "work_experience":
		i := segs[0].index
		if i < 0 || i >= len(rec.WorkExperience) || len(segs) != 2 {
			return fail("work_experience entries are addressed as work_experience[i].<field>")
		}
		entry := &rec.WorkExperience[i]
		switch segs[1].name {
		case "title":
			entry.Title = value
		case "company":
			entry.Company = value
		case "location":
			entry.Location = value
		case "startDate":
			entry.StartDate = value
		case "endDate":
			entry.EndDate = value
		case "description":
			j := segs[1].index
			if j < 0 || j >= len(entry.Description) {
				return fail("description index out of range")
			}
			entry.Description[j] = value
		default:
			return fail("unknown work_experience field " + segs[1].name)
		}
		return nil

	case "education":
		i := segs[0].index
		if i < 0 || i >= len(rec.Education) || len(segs) != 2 || segs[1].index >= 0 {
			return fail("education entries are addressed as education[i].<field>")
		}
		entry := &rec.Education[i]
		switch segs[1].name {
		case "degree":
			entry.Degree = value
		case "school":
			entry.School = value
		case "location":
			entry.Location = value
		case "startDate":
			entry.StartDate = value
		case "endDate":
			entry.EndDate = value
		default:
			return fail("unknown education field " + segs[1].name)
		}
		return nil

	case "skills", "languages", "certifications":
		i := segs[0].index
		if i < 0 || len(segs) != 2 || segs[1].name != "name" || segs[1].index >= 0 {
			return fail("toggle entries are addressed as <list>[i].name")
		}
		list := sess.toggleListRef(segs[0].name)
		if i >= len(list) {
			return fail("index out of range")
		}
		// Names are the reorder/toggle keys for these lists, so a rename
		// must not collide with a sibling.
		for j, entry := range list {
			if j != i && entry.Name == value {
				return fail(fmt.Sprintf("name %q is already used in %s", value, segs[0].name))
			}
		}
		list[i].Name = value
		return nil

	default:
		return fail("unknown top-level field " + segs[0].name)
	}
}

func (sess *Session) toggleListRef(list string) []types.LabeledToggle {
	switch list {
	case ListSkills:
		return sess.record.Skills
	case ListLanguages:
		return sess.record.Languages
	default:
		return sess.record.Certifications
	}
}
