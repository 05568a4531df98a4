package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders the check-in code handed to the restaurant at arrival.
type QRGenerator struct {
	BaseURL string
}

func (g QRGenerator) ReservationCode(reservationID uint) ([]byte, error) {
	data := fmt.Sprintf("%s/reservations/%d/checkin", g.BaseURL, reservationID)
	return qrcode.Encode(data, qrcode.Medium, 256)
}
