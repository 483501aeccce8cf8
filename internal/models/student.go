package models

// Student is an enrolled learner as recorded by the external enrollment
// process. Every field is text, including year and sem: the enrollment
// system stores them that way and this service does not reinterpret them.
type Student struct {
	StudentName string `db:"student_name" json:"student_name"`
	RegNo       string `db:"reg_no" json:"reg_no"`
	Course      string `db:"course" json:"course"`
	Branch      string `db:"branch" json:"branch"`
	Year        string `db:"year" json:"year"`
	Sem         string `db:"sem" json:"sem"`
	Pic         string `db:"pic" json:"pic"`
	ContactNo   string `db:"contact_no" json:"contact_no"`
	EmailID     string `db:"email_id" json:"email_id"`
}
