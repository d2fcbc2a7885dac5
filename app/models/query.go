package models

// Filter narrows a record set before aggregation. Zero-valued fields match
// everything, so the zero Filter is the full cohort.
type Filter struct {
	Department string `query:"department"`
	Program    string `query:"program"`
	Level      string `query:"level"`
	Teacher    string `query:"teacher"`
	CourseCode string `query:"course"`
	Gender     string `query:"gender"`
}

// IsZero reports whether the filter matches the full cohort.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether a record passes every set field.
func (f Filter) Matches(r Record) bool {
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if f.Program != "" && r.Program != f.Program {
		return false
	}
	if f.Level != "" && r.Level != f.Level {
		return false
	}
	if f.Teacher != "" && r.Teacher != f.Teacher {
		return false
	}
	if f.CourseCode != "" && r.CourseCode != f.CourseCode {
		return false
	}
	if f.Gender != "" && r.Gender != f.Gender {
		return false
	}
	return true
}

// Apply returns the records passing the filter. The input slice is never
// mutated.
func (f Filter) Apply(records []Record) []Record {
	if f.IsZero() {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// ListQuery carries the common list parameters of ranking endpoints.
type ListQuery struct {
	Limit int `query:"limit"`
}
