package models

// Subject represents one row of the subject catalogue. Subjects are
// maintained by an external process; this service only reads them.
type Subject struct {
	SubjectID   int    `db:"subject_id" json:"subject_id"`
	SubjectName string `db:"subject_name" json:"subject_name"`
	SubjectCode string `db:"subject_code" json:"subject_code"`
	Sem         int    `db:"sem" json:"sem"`
}

// SubjectOption is the caller-facing shape of a subject: the stored
// subject_code/subject_name columns are renamed for the exam form.
type SubjectOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
