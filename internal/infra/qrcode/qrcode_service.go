package qrcode

import (
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	"contacts/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePersonQR encodes the person as a vCard 3.0 and renders it as PNG.
func (s *qrcodeService) GeneratePersonQR(person *entity.Person) ([]byte, error) {
	if person == nil {
		return nil, errors.New("person is required")
	}

	qrCode, err := qrcode.New(VCard(person), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// VCard renders the contact fields of a person as a vCard 3.0 document.
func VCard(person *entity.Person) string {
	var b strings.Builder
	line := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(escapeVCard(value))
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	line("FN", person.Name)
	line("N", person.Name)
	line("EMAIL", person.Email)
	if person.DateOfBirth != nil {
		line("BDAY", person.DateOfBirth.Format("2006-01-02"))
	}
	if person.Address != "" || person.CountryName() != "" {
		// ADR fields: PO box;extended;street;locality;region;postal code;country
		b.WriteString("ADR:;;" + escapeVCard(person.Address) + ";;;;" + escapeVCard(person.CountryName()) + "\r\n")
	}
	line("UID", person.ID.String())
	b.WriteString("END:VCARD\r\n")

	return b.String()
}

func escapeVCard(s string) string {
	return strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`).Replace(s)
}
