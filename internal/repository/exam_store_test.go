package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreMock(t *testing.T) (*ExamStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewExamStore(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestExamStoreListSubjectsBySemester(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"subject_id", "subject_name", "subject_code", "sem"}).
		AddRow(1, "Compiler Design", "CS301", 5).
		AddRow(2, "Operating Systems", "CS302", 5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT subject_id, subject_name, subject_code, sem FROM subjects WHERE sem = $1")).
		WithArgs(5).
		WillReturnRows(rows)

	subjects, err := store.ListSubjectsBySemester(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "CS301", subjects[0].SubjectCode)
	assert.Equal(t, "Compiler Design", subjects[0].SubjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreListSubjectsBySemesterEmpty(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT subject_id, subject_name, subject_code, sem FROM subjects WHERE sem = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "subject_name", "subject_code", "sem"}))

	subjects, err := store.ListSubjectsBySemester(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, subjects)
	assert.NotNil(t, subjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreInsertExamSession(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO exam_sessions").
		WithArgs(sqlmock.AnyArg(), "CS301", "2024-05-10", "10:00", 5, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ok, err := store.InsertExamSession(context.Background(), "CS301", "2024-05-10", "10:00", 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreInsertExamSessionZeroRows(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO exam_sessions").
		WithArgs(sqlmock.AnyArg(), "CS301", "2024-05-10", "10:00", 5, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := store.InsertExamSession(context.Background(), "CS301", "2024-05-10", "10:00", 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExamStoreInsertExamSessionError(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO exam_sessions").
		WillReturnError(errors.New("connection refused"))

	ok, err := store.InsertExamSession(context.Background(), "CS301", "2024-05-10", "10:00", 5)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExamStoreListExamSessionsBySemester(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "subject_code", "exam_date", "exam_time", "semester", "created_at"}).
		AddRow("a1", "CS301", "2024-05-10", "10:00", 5, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, subject_code, exam_date, exam_time, semester, created_at FROM exam_sessions WHERE semester = $1")).
		WithArgs(5).
		WillReturnRows(rows)

	sessions, err := store.ListExamSessionsBySemester(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "CS301", sessions[0].SubjectCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreListStudents(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"student_name", "reg_no", "course", "branch", "year", "sem", "pic", "contact_no", "email_id"}).
		AddRow("Ayush", "RA221100", "B.Tech", "CSE", "3", "5", "pics/ra221100.jpg", "9999999999", "ayush@example.com")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_name, reg_no, course, branch, year, sem, pic, contact_no, email_id FROM students WHERE sem = $1 AND branch = $2")).
		WithArgs("5", "CSE").
		WillReturnRows(rows)

	students, err := store.ListStudents(context.Background(), "5", "CSE")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "RA221100", students[0].RegNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreGetStudentByRegNo(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"student_name", "reg_no", "course", "branch", "year", "sem", "pic", "contact_no", "email_id"}).
		AddRow("Ayush", "RA221100", "B.Tech", "CSE", "3", "5", "pics/ra221100.jpg", "9999999999", "ayush@example.com")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_name, reg_no, course, branch, year, sem, pic, contact_no, email_id FROM students WHERE reg_no = $1 LIMIT 1")).
		WithArgs("RA221100").
		WillReturnRows(rows)

	student, err := store.GetStudentByRegNo(context.Background(), "RA221100")
	require.NoError(t, err)
	require.NotNil(t, student)
	assert.Equal(t, "Ayush", student.StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamStoreGetStudentByRegNoAbsent(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_name, reg_no, course, branch, year, sem, pic, contact_no, email_id FROM students WHERE reg_no = $1 LIMIT 1")).
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	student, err := store.GetStudentByRegNo(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, student)
}
