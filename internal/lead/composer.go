// Package lead turns visitor form submissions into outbound messages and the
// deep links that deliver them. Nothing here performs I/O: the composed links
// are handed back to the client, which opens them in the messaging app / mail
// client registered on the device.
package lead

import (
	"strings"

	"dealerd/pkg/types"
)

// Interaction types a visitor can request.
const (
	TypeQuote    = "Quote"
	TypeTestRide = "Test Ride"
	TypeCallBack = "Call Back"
)

// AnyModel is the model label when no specific model was selected.
const AnyModel = "Any"

// Contact is the dealership contact card the composer targets.
type Contact struct {
	Brand    string
	Address  string
	Phone    string
	WhatsApp string
	// LeadEmail is the optional mailto fallback; empty disables it.
	LeadEmail string
	// MailSubject is the fixed subject line for the mailto link.
	MailSubject string
	// Greeting is the first line of every composed message.
	Greeting string
}

// Composer formats lead requests into messages and deep links for one
// dealership contact.
type Composer struct {
	contact Contact
}

// NewComposer returns a Composer for the given contact card.
func NewComposer(c Contact) *Composer { return &Composer{contact: c} }

// Contact returns the contact card the composer was built with.
func (c *Composer) Contact() Contact { return c.contact }

// invalidRequestError reports a missing required field.
type invalidRequestError struct{ field string }

func (e invalidRequestError) Error() string { return e.field + " is required" }

// IsInvalidRequest reports whether err indicates a lead request missing a
// required field.
func IsInvalidRequest(err error) bool {
	_, ok := err.(invalidRequestError)
	return ok
}

// Compose validates req, applies defaults (type Quote, model Any) and returns
// the message plus its WhatsApp and optional mailto deep links.
func (c *Composer) Compose(req types.LeadRequest) (types.LeadResponse, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	city := strings.TrimSpace(req.City)
	if name == "" {
		return types.LeadResponse{}, invalidRequestError{field: "name"}
	}
	if phone == "" {
		return types.LeadResponse{}, invalidRequestError{field: "phone"}
	}
	if city == "" {
		return types.LeadResponse{}, invalidRequestError{field: "city"}
	}
	typ := strings.TrimSpace(req.Type)
	if typ == "" {
		typ = TypeQuote
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = AnyModel
	}

	var lines []string
	if c.contact.Greeting != "" {
		lines = append(lines, c.contact.Greeting)
	}
	lines = append(lines,
		"Name: "+name,
		"Phone: "+phone,
		"City: "+city,
		"I want: "+typ,
		"Model: "+model,
	)
	msg := strings.Join(lines, "\n")

	resp := types.LeadResponse{
		Message:     msg,
		WhatsAppURL: WhatsAppLink(c.contact.WhatsApp, msg),
	}
	if c.contact.LeadEmail != "" {
		resp.MailtoURL = MailtoLink(c.contact.LeadEmail, c.contact.MailSubject, msg)
	}
	return resp, nil
}
