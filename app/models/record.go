package models

import "time"

// Grade bounds and pass mark of the grading scale.
const (
	GradeMin = 0.0
	GradeMax = 20.0
	PassMark = 10.0
)

// Columns is the canonical CSV header of a dataset snapshot, in order.
var Columns = []string{
	"student_id",
	"last_name",
	"first_name",
	"gender",
	"birth_date",
	"department",
	"program",
	"level",
	"academic_year",
	"course_code",
	"course_title",
	"teacher",
	"grade",
}

// BirthDateLayout is the dd/mm/yyyy layout used in snapshot files.
const BirthDateLayout = "02/01/2006"

// Record is one graded course entry for one student, i.e. one snapshot row.
// Records are immutable after load; every derived view recomputes from the
// full slice.
type Record struct {
	StudentID    string    `json:"studentId"`
	LastName     string    `json:"lastName"`
	FirstName    string    `json:"firstName"`
	Gender       string    `json:"gender"`
	BirthDate    time.Time `json:"birthDate"`
	Age          int       `json:"age"`
	Department   string    `json:"department"`
	Program      string    `json:"program"`
	Level        string    `json:"level"`
	AcademicYear string    `json:"academicYear"`
	CourseCode   string    `json:"courseCode"`
	CourseTitle  string    `json:"courseTitle"`
	Teacher      string    `json:"teacher"`
	Grade        float64   `json:"grade"`
}

// StudentRecord is the per-student view of the snapshot: identity,
// demographics and the student's grade per course.
type StudentRecord struct {
	StudentID  string             `json:"studentId"`
	LastName   string             `json:"lastName"`
	FirstName  string             `json:"firstName"`
	Gender     string             `json:"gender"`
	Age        int                `json:"age"`
	Department string             `json:"department"`
	Program    string             `json:"program"`
	Level      string             `json:"level"`
	Grades     map[string]float64 `json:"grades"`
}

// AgeBracket buckets an age the way the reports group demographics.
// Ages outside the covered range fall into the open-ended last bracket
// (below 18 is not produced by the generator).
func AgeBracket(age int) string {
	switch {
	case age <= 20:
		return "18-20"
	case age <= 23:
		return "21-23"
	case age <= 26:
		return "24-26"
	default:
		return "27+"
	}
}

// AgeBrackets lists the bracket labels in ascending order.
var AgeBrackets = []string{"18-20", "21-23", "24-26", "27+"}

// CollectStudents groups snapshot rows into per-student records. Rows of the
// same student share identity fields, so the first row wins for those.
func CollectStudents(records []Record) []StudentRecord {
	index := make(map[string]int)
	var students []StudentRecord
	for _, r := range records {
		i, ok := index[r.StudentID]
		if !ok {
			students = append(students, StudentRecord{
				StudentID:  r.StudentID,
				LastName:   r.LastName,
				FirstName:  r.FirstName,
				Gender:     r.Gender,
				Age:        r.Age,
				Department: r.Department,
				Program:    r.Program,
				Level:      r.Level,
				Grades:     make(map[string]float64),
			})
			i = len(students) - 1
			index[r.StudentID] = i
		}
		students[i].Grades[r.CourseCode] = r.Grade
	}
	return students
}
