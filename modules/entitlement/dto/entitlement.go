package dto

type Entitlements struct {
	Email     string   `json:"email"`
	Balance   float64  `json:"balance"`
	CourseIDs []string `json:"course_ids"`
}
