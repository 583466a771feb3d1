// Package qrcode renders booking confirmation QR codes.
package qrcode

import (
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"hostelhub/internal/domain/service"
	"hostelhub/internal/errors"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload embedded in a booking QR code.
type QRCodeData struct {
	BookingID int64  `json:"booking_id"`
	Type      string `json:"type"`
}

const payloadType = "booking"

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBookingQR renders a PNG QR code carrying the booking reference.
func (s *qrcodeService) GenerateBookingQR(bookingID int64) ([]byte, error) {
	data := QRCodeData{
		BookingID: bookingID,
		Type:      payloadType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseBookingQR decodes QR payload data back into a booking ID.
func (s *qrcodeService) ParseBookingQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadType {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.BookingID <= 0 {
		return 0, errors.New("invalid booking id in QR code")
	}

	return data.BookingID, nil
}
