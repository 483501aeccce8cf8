package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ExamRow is one line of the admit-card exam schedule.
type ExamRow struct {
	SubjectCode string
	ExamDate    string
	ExamTime    string
}

// AdmitCardData holds everything the hall ticket displays.
type AdmitCardData struct {
	StudentName string
	RegNo       string
	Course      string
	Branch      string
	Year        string
	Sem         string
	Exams       []ExamRow
}

// AdmitCardRenderer renders an admit card (hall ticket) into a PDF.
type AdmitCardRenderer struct {
	Centre  string
	Heading string
}

// NewAdmitCardRenderer constructs a renderer with the default campus labels.
func NewAdmitCardRenderer() *AdmitCardRenderer {
	return &AdmitCardRenderer{
		Centre:  "SRMIST, Delhi-NCR Campus",
		Heading: "Internal Examinations",
	}
}

// Render produces the hall ticket PDF for a single student.
func (r *AdmitCardRenderer) Render(data AdmitCardData) ([]byte, error) {
	if data.RegNo == "" {
		return nil, fmt.Errorf("admit card requires a registration number")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(51, 102, 153)
	pdf.Rect(0, 0, 210, 22, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetXY(10, 6)
	pdf.CellFormat(0, 8, r.Heading, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetY(26)
	pdf.CellFormat(0, 10, "HALL TICKET", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	labelValue := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	labelValue("EXAMINATION CENTRE", r.Centre)
	labelValue("REGISTRATION NUMBER", data.RegNo)
	labelValue("NAME OF THE CANDIDATE", strings.ToUpper(data.StudentName))
	labelValue("PROGRAM / BRANCH", strings.TrimSpace(data.Course+" "+data.Branch))
	labelValue("YEAR / SEMESTER", strings.TrimSpace(data.Year+" / "+data.Sem))
	pdf.Ln(6)

	// Exam schedule table
	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Subject Code", "Exam Date", "Exam Time"}
	colWidth := 190.0 / float64(len(headers))
	for _, header := range headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(data.Exams) == 0 {
		pdf.CellFormat(190, 7, "No exam sessions scheduled", "1", 1, "C", false, 0, "")
	}
	for _, row := range data.Exams {
		pdf.CellFormat(colWidth, 7, row.SubjectCode, "1", 0, "", false, 0, "")
		pdf.CellFormat(colWidth, 7, row.ExamDate, "1", 0, "", false, 0, "")
		pdf.CellFormat(colWidth, 7, row.ExamTime, "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(14)

	// Signature lines
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 7, "Signature of the Candidate", "T", 0, "C", false, 0, "")
	pdf.CellFormat(95, 7, "Controller of Examinations", "T", 1, "C", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render admit card: %w", err)
	}
	return buf.Bytes(), nil
}
