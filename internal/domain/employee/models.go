package employee

import "time"

type Employee struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	Name           string          `json:"name"`
	DOB            time.Time       `json:"dob"`
	Address        string          `json:"address"`
	Contact        string          `json:"contact"`
	Qualifications []Qualification `json:"qualifications"`
}

type Qualification struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employeeId"`
	Course          string  `json:"course"`
	YearPassed      int     `json:"yearPassed"`
	MarksPercentage float64 `json:"marksPercentage"`
}

// Input carries the writable fields of an employee aggregate. Ids are never
// part of it: the employee id comes from the URL, the owner from the token,
// and qualification ids are regenerated by the store on every write.
type Input struct {
	Name           string
	DOB            time.Time
	Address        string
	Contact        string
	Qualifications []QualificationInput
}

type QualificationInput struct {
	Course          string
	YearPassed      int
	MarksPercentage float64
}
