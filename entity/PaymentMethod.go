package entity

import "strings"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
)

// ParsePaymentMethod รับค่าแบบไม่สนตัวพิมพ์ ค่าว่างได้ CASH
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case "", PaymentCash:
		return PaymentCash, true
	case PaymentCard:
		return PaymentCard, true
	case PaymentUPI:
		return PaymentUPI, true
	}
	return "", false
}
