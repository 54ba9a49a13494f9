package model

// Course คือ metadata ของคอร์สที่ mirror มาจาก course service
type Course struct {
	ID          string
	Title       string
	Description string
	Price       float64
}

// CourseDraft คือข้อมูลคอร์สใหม่ก่อนส่งไปสร้างที่ course service
type CourseDraft struct {
	Title       string
	Description string
	Price       float64
}
