package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exam Portal API",
        "description": "Admit card and exam session backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Exams", "description": "Exam session scheduling"},
        {"name": "Subjects", "description": "Subject catalogue lookups"},
        {"name": "Students", "description": "Student enrollment lookups"},
        {"name": "Admit Cards", "description": "Hall ticket generation"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/addExamSession": {
            "post": {
                "tags": ["Exams"],
                "summary": "Add an exam session",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "subjectCode", "in": "formData", "type": "string", "required": true},
                    {"name": "examDate", "in": "formData", "type": "string", "required": true},
                    {"name": "examTime", "in": "formData", "type": "string", "required": true},
                    {"name": "semester", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Exam session added successfully"},
                    "400": {"description": "Missing parameters"},
                    "500": {"description": "Database error"}
                }
            }
        },
        "/getSubjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects for a semester",
                "parameters": [
                    {"name": "sem", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Subject options",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/SubjectOption"}}
                    },
                    "400": {"description": "Invalid sem parameter"},
                    "500": {"description": "Database error"}
                }
            }
        },
        "/getExamSessions": {
            "get": {
                "tags": ["Exams"],
                "summary": "List exam sessions for a semester",
                "parameters": [
                    {"name": "sem", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Exam sessions",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ExamSession"}}
                    },
                    "400": {"description": "Invalid sem parameter"},
                    "500": {"description": "Database error"}
                }
            }
        },
        "/getStudents": {
            "get": {
                "tags": ["Students"],
                "summary": "List students for a semester and branch",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "required": true},
                    {"name": "branch", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Students",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}
                    },
                    "400": {"description": "Missing parameters"},
                    "500": {"description": "Database error"}
                }
            }
        },
        "/getStudent": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student by registration number",
                "parameters": [
                    {"name": "regNo", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Student",
                        "schema": {"$ref": "#/definitions/Student"}
                    },
                    "400": {"description": "Missing regNo parameter"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/admitCard": {
            "get": {
                "tags": ["Admit Cards"],
                "summary": "Render the admit card PDF for a student",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "regNo", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Admit card PDF"},
                    "400": {"description": "Missing regNo parameter"},
                    "404": {"description": "Student not found"}
                }
            }
        }
    },
    "definitions": {
        "SubjectOption": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "ExamSession": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subject_code": {"type": "string"},
                "exam_date": {"type": "string"},
                "exam_time": {"type": "string"},
                "semester": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "student_name": {"type": "string"},
                "reg_no": {"type": "string"},
                "course": {"type": "string"},
                "branch": {"type": "string"},
                "year": {"type": "string"},
                "sem": {"type": "string"},
                "pic": {"type": "string"},
                "contact_no": {"type": "string"},
                "email_id": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
