package entity

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	// ยังไม่มี transition ไป FAILED เพราะไม่มี gateway จริง
	PaymentFailed PaymentStatus = "FAILED"
)
