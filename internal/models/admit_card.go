package models

// AdmitCard pairs a student with the exam sessions of their semester.
type AdmitCard struct {
	Student  Student       `json:"student"`
	Sessions []ExamSession `json:"sessions"`
}
