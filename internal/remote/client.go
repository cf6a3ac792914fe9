package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"stegcalc/internal/domain"
)

const (
	fieldMessage  = "message"
	fieldPassword = "password"
	fieldImage    = "image"

	// GenericEncryptFailure is reported when a failed encrypt response
	// carries no usable error text.
	GenericEncryptFailure = "Encryption failed."
	// GenericDecryptFailure is reported when a failed decrypt response
	// carries no usable error text.
	GenericDecryptFailure = "Decryption failed."
)

// ServiceError is a non-success answer from the remote service.
type ServiceError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// Client talks to the remote service at Base.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base using hc, or http.DefaultClient when hc is nil.
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

var _ domain.ExchangeClient = (*Client)(nil)

// Encrypt uploads the message, password and cover image and returns the
// carrier image bytes as sent by the service.
func (c *Client) Encrypt(ctx context.Context, req domain.EncryptRequest) ([]byte, error) {
	resp, err := c.postForm(ctx, "encrypt", func(w *multipart.Writer) error {
		if err := w.WriteField(fieldMessage, req.Message); err != nil {
			return err
		}
		if err := w.WriteField(fieldPassword, req.Password); err != nil {
			return err
		}
		return writeImage(w, req.CoverImage)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var body struct {
			Error string `json:"error"`
		}
		msg := GenericEncryptFailure
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error != "" {
			msg = body.Error
		}
		return nil, &ServiceError{Op: "encrypt", StatusCode: resp.StatusCode, Message: msg}
	}
	carrier, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("encrypt: read carrier: %w", err)
	}
	return carrier, nil
}

// Decrypt uploads the password and stego image and returns the recovered
// plaintext.
func (c *Client) Decrypt(ctx context.Context, req domain.DecryptRequest) (string, error) {
	resp, err := c.postForm(ctx, "decrypt", func(w *multipart.Writer) error {
		if err := w.WriteField(fieldPassword, req.Password); err != nil {
			return err
		}
		return writeImage(w, req.StegoImage)
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// The body is JSON whatever the status.
	var body struct {
		Message *string `json:"message"`
		Error   string  `json:"error"`
	}
	decErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode/100 != 2 {
		msg := GenericDecryptFailure
		if decErr == nil && body.Error != "" {
			msg = body.Error
		}
		return "", &ServiceError{Op: "decrypt", StatusCode: resp.StatusCode, Message: msg}
	}
	if decErr != nil || body.Message == nil {
		return "", &ServiceError{Op: "decrypt", StatusCode: resp.StatusCode, Message: GenericDecryptFailure}
	}
	return *body.Message, nil
}

func (c *Client) postForm(ctx context.Context, op string, fill func(*multipart.Writer) error) (*http.Response, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	if err := fill(w); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/"+op, buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json, image/*")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}

// writeImage adds the image part, sniffing its content type.
func writeImage(w *multipart.Writer, img domain.Image) error {
	name := img.Name
	if name == "" {
		name = fieldImage
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     fieldImage,
		"filename": name,
	}))
	h.Set("Content-Type", http.DetectContentType(img.Data))
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(img.Data)
	return err
}
