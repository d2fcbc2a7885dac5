// Package repository persists and loads dataset snapshots. The store is a
// tabular file (CSV, with an XLSX mirror); there is no database, every
// consumer recomputes from the file.
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"grade-analytics/app/models"
	"grade-analytics/utils"
)

var (
	// ErrMissingColumn marks a snapshot whose header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrEmptySnapshot marks a snapshot with a header but no rows.
	ErrEmptySnapshot = errors.New("snapshot contains no records")
)

// SnapshotRepository loads and saves dataset snapshots.
type SnapshotRepository interface {
	Load(path string) (*models.Snapshot, error)
	SaveCSV(records []models.Record, path string) error
	SaveXLSX(records []models.Record, path string) error
}

type fileSnapshotRepository struct{}

func NewSnapshotRepository() SnapshotRepository {
	return &fileSnapshotRepository{}
}

// Load reads a snapshot file, dispatching on the extension (.csv or .xlsx),
// and assigns it a fresh snapshot id.
func (r *fileSnapshotRepository) Load(path string) (*models.Snapshot, error) {
	var (
		records []models.Record
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, ferr := os.Open(path)
		if ferr != nil {
			return nil, fmt.Errorf("open snapshot: %w", ferr)
		}
		defer f.Close()
		records, err = ReadCSV(f)
	case ".xlsx":
		records, err = readXLSXFile(path)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &models.Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Source:   path,
		Records:  records,
	}, nil
}

func (r *fileSnapshotRepository) SaveCSV(records []models.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(records, f)
}

func (r *fileSnapshotRepository) SaveXLSX(records []models.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range models.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for i, rec := range records {
		for col, v := range rowValues(rec) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// WriteCSV writes the canonical header and one row per record.
func WriteCSV(records []models.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rowValues(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a snapshot stream, validating the header and every row.
func ReadCSV(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func readXLSXFile(path string) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]models.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySnapshot
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range models.Columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	if len(rows) == 1 {
		return nil, ErrEmptySnapshot
	}

	records := make([]models.Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, index map[string]int) (models.Record, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	birth, err := time.Parse(models.BirthDateLayout, field("birth_date"))
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid birth_date %q", field("birth_date"))
	}
	grade, err := strconv.ParseFloat(field("grade"), 64)
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid grade %q", field("grade"))
	}
	if grade < models.GradeMin || grade > models.GradeMax {
		return models.Record{}, fmt.Errorf("grade %g outside [%g, %g]",
			grade, models.GradeMin, models.GradeMax)
	}
	refDate, err := utils.AcademicYearStart(field("academic_year"))
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{
		StudentID:    field("student_id"),
		LastName:     field("last_name"),
		FirstName:    field("first_name"),
		Gender:       field("gender"),
		BirthDate:    birth,
		Age:          utils.AgeAt(birth, refDate),
		Department:   field("department"),
		Program:      field("program"),
		Level:        field("level"),
		AcademicYear: field("academic_year"),
		CourseCode:   field("course_code"),
		CourseTitle:  field("course_title"),
		Teacher:      field("teacher"),
		Grade:        grade,
	}, nil
}

func rowValues(r models.Record) []string {
	return []string{
		r.StudentID,
		r.LastName,
		r.FirstName,
		r.Gender,
		r.BirthDate.Format(models.BirthDateLayout),
		r.Department,
		r.Program,
		r.Level,
		r.AcademicYear,
		r.CourseCode,
		r.CourseTitle,
		r.Teacher,
		utils.FormatGrade(r.Grade),
	}
}
