package exchange

import (
	"context"
	"errors"
	"sync"

	"gopkg.in/op/go-logging.v1"

	"stegcalc/internal/crypto"
	"stegcalc/internal/domain"
	"stegcalc/internal/log"
	"stegcalc/internal/remote"
	"stegcalc/internal/status"
)

// DownloadName is the file name the carrier image is offered under.
const DownloadName = "secret.png"

// Status texts.
const (
	MsgEncryptFieldsRequired = "All fields are required for encryption."
	MsgDecryptFieldsRequired = "Password and image are required for decryption."
	MsgEncrypting            = "Encrypting and hiding data..."
	MsgDecrypting            = "Revealing and decrypting..."
	MsgEncrypted             = "Encrypted image downloaded successfully."
	MsgDecrypted             = "Decryption successful!"

	errorPrefix = "Error: "
)

// Service is the secure exchange client.
type Service struct {
	client    domain.ExchangeClient
	downloads domain.Downloader
	status    *status.Slot
	log       *logging.Logger

	mu          sync.Mutex
	plaintext   []byte
	copyVisible bool
}

// New constructs a Service. A nil logger discards log output.
func New(
	client domain.ExchangeClient,
	downloads domain.Downloader,
	st *status.Slot,
	l *logging.Logger,
) *Service {
	if l == nil {
		l = log.Discard("exchange")
	}
	return &Service{
		client:    client,
		downloads: downloads,
		status:    st,
		log:       l,
	}
}

var _ domain.ExchangeService = (*Service)(nil)

// Encrypt hides req.Message in req.CoverImage via the remote service and
// offers the result as DownloadName.
func (s *Service) Encrypt(ctx context.Context, req domain.EncryptRequest) domain.ExchangeResult {
	if err := req.Validate(); err != nil {
		s.status.Set(MsgEncryptFieldsRequired)
		return domain.Failure(MsgEncryptFieldsRequired)
	}

	s.status.Set(MsgEncrypting)
	carrier, err := s.client.Encrypt(ctx, req)
	if err != nil {
		return s.fail("encrypt", err)
	}

	path, err := s.downloads.Offer(DownloadName, carrier)
	if err != nil {
		return s.fail("encrypt", err)
	}
	s.log.Noticef("carrier %s saved to %s (%d bytes)", crypto.Fingerprint(carrier), path, len(carrier))
	s.status.Set(MsgEncrypted)
	return domain.Success(carrier)
}

// Decrypt recovers the message hidden in req.StegoImage and displays it.
func (s *Service) Decrypt(ctx context.Context, req domain.DecryptRequest) domain.ExchangeResult {
	// A stale result must not stay visible during a new attempt.
	s.Reset()

	if err := req.Validate(); err != nil {
		s.status.Set(MsgDecryptFieldsRequired)
		return domain.Failure(MsgDecryptFieldsRequired)
	}

	s.status.Set(MsgDecrypting)
	plaintext, err := s.client.Decrypt(ctx, req)
	if err != nil {
		return s.fail("decrypt", err)
	}

	s.mu.Lock()
	s.plaintext = []byte(plaintext)
	s.copyVisible = true
	s.mu.Unlock()

	s.log.Noticef("decrypted message from %s (%s)", req.StegoImage.Name, crypto.Fingerprint(req.StegoImage.Data))
	s.status.Set(MsgDecrypted)
	return domain.Success([]byte(plaintext))
}

// Plaintext returns the displayed plaintext, empty when none.
func (s *Service) Plaintext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.plaintext)
}

// CopyVisible reports whether the copy action is offered.
func (s *Service) CopyVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyVisible
}

// Reset wipes the displayed plaintext and hides the copy action.
func (s *Service) Reset() {
	s.mu.Lock()
	crypto.Wipe(s.plaintext)
	s.plaintext = nil
	s.copyVisible = false
	s.mu.Unlock()
}

func (s *Service) fail(op string, err error) domain.ExchangeResult {
	msg := err.Error()
	var se *remote.ServiceError
	if errors.As(err, &se) {
		s.log.Warningf("%s: service answered %d: %s", op, se.StatusCode, se.Message)
	} else {
		s.log.Errorf("%s: %v", op, err)
	}
	s.status.Set(errorPrefix + msg)
	return domain.Failure(msg)
}
