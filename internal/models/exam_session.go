package models

import "time"

// ExamSession is a scheduled examination for one subject. Sessions are
// insert-only: nothing updates or deletes them, and duplicates are allowed.
type ExamSession struct {
	ID          string    `db:"id" json:"id"`
	SubjectCode string    `db:"subject_code" json:"subject_code"`
	ExamDate    string    `db:"exam_date" json:"exam_date"`
	ExamTime    string    `db:"exam_time" json:"exam_time"`
	Semester    int       `db:"semester" json:"semester"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
