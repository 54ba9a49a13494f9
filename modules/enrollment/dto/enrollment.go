package dto

type EnrollmentResult struct {
	CourseID string  `json:"course_id"`
	Balance  float64 `json:"balance"`
}

func NewEnrollmentResult(courseID string, balance float64) *EnrollmentResult {
	return &EnrollmentResult{CourseID: courseID, Balance: balance}
}
