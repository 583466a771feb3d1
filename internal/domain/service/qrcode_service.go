package service

// QRCodeService defines the interface for booking confirmation QR codes,
// scanned at the front desk during check-in.
type QRCodeService interface {
	// GenerateBookingQR renders a PNG QR code carrying the booking reference.
	GenerateBookingQR(bookingID int64) ([]byte, error)

	// ParseBookingQR decodes QR payload data back into a booking ID.
	ParseBookingQR(qrData string) (int64, error)
}
