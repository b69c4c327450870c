package types

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// Models matching the requested segment/query filter, in catalog order.
	Models []VehicleModel `json:"models"`
}

// SegmentsResponse is returned by GET /segments.
type SegmentsResponse struct {
	Segments []Segment `json:"segments"`
}

// ToggleRequest selects or deselects a model for comparison.
type ToggleRequest struct {
	// Model id to toggle.
	// example: orbit
	ID string `json:"id" example:"orbit"`
}

// CompareResponse describes the visitor's comparison selection.
type CompareResponse struct {
	// Selected model ids in add order, oldest first.
	IDs []string `json:"ids"`
	// Hydrated models for the selected ids, same order. Ids that no longer
	// resolve against the catalog are skipped.
	Models []VehicleModel `json:"models"`
	// Active reports whether the comparison view should be shown (>= 2 selected).
	// example: true
	Active bool `json:"active" example:"true"`
}

// LeadRequest is a visitor's quote / test ride / call back request.
// It is never stored; it is consumed into a composed message.
type LeadRequest struct {
	// Full name. Required.
	// example: Ali
	Name string `json:"name" example:"Ali"`
	// Phone / WhatsApp number. Required, format not validated.
	// example: 03001234567
	Phone string `json:"phone" example:"03001234567"`
	// City. Required.
	// example: Lahore
	City string `json:"city" example:"Lahore"`
	// Interaction type: Quote, Test Ride or Call Back. Defaults to Quote.
	// example: Quote
	Type string `json:"type,omitempty" example:"Quote"`
	// Model name of interest. Defaults to "Any".
	// example: ORBIT
	Model string `json:"model,omitempty" example:"ORBIT"`
}

// LeadResponse carries the composed message and the outbound deep links the
// client should open. Delivery is entirely delegated to the messaging app /
// mail client on the visiting device.
type LeadResponse struct {
	// Composed multi-line message text.
	Message string `json:"message"`
	// WhatsApp deep link with the message as the text parameter.
	WhatsAppURL string `json:"whatsapp_url"`
	// Optional mailto deep link; empty when no fallback address is configured.
	MailtoURL string `json:"mailto_url,omitempty"`
}

// ContactResponse is the dealership contact card with its deep links.
type ContactResponse struct {
	Brand   string `json:"brand" example:"Muslim Autos"`
	Address string `json:"address"`
	Phone   string `json:"phone" example:"+92-333-6300769"`
	// Google Maps search deep link for the address.
	MapsURL string `json:"maps_url"`
	// tel: deep link, phone stripped to + and digits.
	TelURL string `json:"tel_url" example:"tel:+923336300769"`
	// WhatsApp chat deep link without a prefilled message.
	WhatsAppURL string `json:"whatsapp_url"`
}

// NewsResponse wraps the news & events feed.
type NewsResponse struct {
	Items []NewsItem `json:"items"`
}

// CatalogUpdateResponse reports the outcome of an admin catalog replace/reset.
type CatalogUpdateResponse struct {
	// Number of models now in the catalog.
	// example: 10
	Models int `json:"models" example:"10"`
	// Persisted is false when the in-memory catalog was updated but the
	// snapshot could not be written; the change then lasts for this process
	// only.
	// example: true
	Persisted bool `json:"persisted" example:"true"`
	// Error carries the persistence failure reason when Persisted is false.
	Error string `json:"error,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
