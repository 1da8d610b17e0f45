package document

import "github.com/dscirocco/cvarchitect/internal/types"

// List names accepted by Reorder and ToggleVisibility.
const (
	ListSkills         = "skills"
	ListLanguages      = "languages"
	ListCertifications = "certifications"
	ListExperience     = "work_experience"
	ListEducation      = "education"
)

// Reorder relocates the entry identified by fromKey so that it occupies the
// position of the entry identified by toKey, preserving the relative order of
// everything else. Toggle lists are keyed by entry name; work experience and
// education are keyed by their synthetic ID. Reordering never changes
// visibility.
func (sess *Session) Reorder(list, fromKey, toKey string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch list {
	case ListSkills:
		return moveToggle(list, sess.record.Skills, fromKey, toKey)
	case ListLanguages:
		return moveToggle(list, sess.record.Languages, fromKey, toKey)
	case ListCertifications:
		return moveToggle(list, sess.record.Certifications, fromKey, toKey)
	case ListExperience:
		from, to, err := indexByID(list, experienceIDs(sess.record.WorkExperience), fromKey, toKey)
		if err != nil {
			return err
		}
		move(sess.record.WorkExperience, from, to)
		return nil
	case ListEducation:
		from, to, err := indexByID(list, educationIDs(sess.record.Education), fromKey, toKey)
		if err != nil {
			return err
		}
		move(sess.record.Education, from, to)
		return nil
	default:
		return &ListError{List: list}
	}
}

// ToggleVisibility flips visible for the single matching entry; order is
// untouched.
func (sess *Session) ToggleVisibility(list, key string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch list {
	case ListSkills:
		return flipToggle(list, sess.record.Skills, key)
	case ListLanguages:
		return flipToggle(list, sess.record.Languages, key)
	case ListCertifications:
		return flipToggle(list, sess.record.Certifications, key)
	case ListExperience:
		for i := range sess.record.WorkExperience {
			if sess.record.WorkExperience[i].ID == key {
				sess.record.WorkExperience[i].Visible = !sess.record.WorkExperience[i].Visible
				return nil
			}
		}
		return &KeyError{List: list, Key: key}
	case ListEducation:
		for i := range sess.record.Education {
			if sess.record.Education[i].ID == key {
				sess.record.Education[i].Visible = !sess.record.Education[i].Visible
				return nil
			}
		}
		return &KeyError{List: list, Key: key}
	default:
		return &ListError{List: list}
	}
}

func moveToggle(list string, entries []types.LabeledToggle, fromKey, toKey string) error {
	from, to := -1, -1
	for i, e := range entries {
		if e.Name == fromKey {
			from = i
		}
		if e.Name == toKey {
			to = i
		}
	}
	if from < 0 {
		return &KeyError{List: list, Key: fromKey}
	}
	if to < 0 {
		return &KeyError{List: list, Key: toKey}
	}
	move(entries, from, to)
	return nil
}

func flipToggle(list string, entries []types.LabeledToggle, key string) error {
	for i := range entries {
		if entries[i].Name == key {
			entries[i].Visible = !entries[i].Visible
			return nil
		}
	}
	return &KeyError{List: list, Key: key}
}

func indexByID(list string, ids []string, fromKey, toKey string) (int, int, error) {
	from, to := -1, -1
	for i, id := range ids {
		if id == fromKey {
			from = i
		}
		if id == toKey {
			to = i
		}
	}
	if from < 0 {
		return 0, 0, &KeyError{List: list, Key: fromKey}
	}
	if to < 0 {
		return 0, 0, &KeyError{List: list, Key: toKey}
	}
	return from, to, nil
}

func experienceIDs(entries []types.WorkExperience) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func educationIDs(entries []types.Education) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// move relocates the element at from so it ends up at index to, shifting the
// elements in between by one. Same semantics as dnd-style array moves.
func move[T any](s []T, from, to int) {
	if from == to {
		return
	}
	item := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = item
}
