package model

import "time"

// Notification คือข้อความแจ้งเตือนที่ดึงมาจาก notification service
type Notification struct {
	ID             string
	RecipientEmail string
	Message        string
	SentAt         time.Time
}
