package lead

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me chat deep link. The phone is stripped to bare
// digits; text, when non-empty, becomes the prefilled message.
func WhatsAppLink(phone, text string) string {
	u := "https://wa.me/" + digitsOnly(phone)
	if text != "" {
		u += "?text=" + encodeComponent(text)
	}
	return u
}

// MailtoLink builds a mailto deep link with a fixed subject and the message
// as the body.
func MailtoLink(addr, subject, body string) string {
	return "mailto:" + addr + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// MapsLink builds a Google Maps search deep link for a street address.
func MapsLink(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + encodeComponent(address)
}

// TelLink builds a tel: deep link, keeping only '+' and digits.
func TelLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become %20,
// not '+'. Messaging apps and mail clients do not decode '+' as space.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
