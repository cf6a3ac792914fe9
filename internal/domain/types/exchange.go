package types

import "errors"

// ErrMissingFields is returned by request validation when a mandatory field
// is absent. Such requests are never sent.
var ErrMissingFields = errors.New("missing required fields")

// Image is an opaque image file exchanged with the remote service.
type Image struct {
	Name string
	Data []byte
}

// Present reports whether the image carries any bytes.
func (i Image) Present() bool { return len(i.Data) > 0 }

// EncryptRequest asks the service to hide Message in CoverImage under Password.
type EncryptRequest struct {
	Message    string
	Password   string
	CoverImage Image
}

// Validate checks that every field is present.
func (r EncryptRequest) Validate() error {
	if r.Message == "" || r.Password == "" || !r.CoverImage.Present() {
		return ErrMissingFields
	}
	return nil
}

// DecryptRequest asks the service to recover the message hidden in StegoImage.
type DecryptRequest struct {
	Password   string
	StegoImage Image
}

// Validate checks that every field is present.
func (r DecryptRequest) Validate() error {
	if r.Password == "" || !r.StegoImage.Present() {
		return ErrMissingFields
	}
	return nil
}

// ExchangeResult is the outcome of one workflow invocation: either a payload
// (carrier image bytes for encrypt, plaintext for decrypt) or a failure text.
type ExchangeResult struct {
	OK      bool
	Payload []byte
	Message string
}

// Success wraps a workflow payload.
func Success(payload []byte) ExchangeResult {
	return ExchangeResult{OK: true, Payload: payload}
}

// Failure wraps a failure text.
func Failure(msg string) ExchangeResult {
	return ExchangeResult{Message: msg}
}
