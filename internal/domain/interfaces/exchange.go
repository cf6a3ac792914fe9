package interfaces

import (
	"context"

	domaintypes "stegcalc/internal/domain/types"
)

// ExchangeClient is how we talk to the remote encryption/steganography
// service, all with context.
type ExchangeClient interface {
	// Encrypt returns the carrier image with the message embedded.
	Encrypt(ctx context.Context, req domaintypes.EncryptRequest) ([]byte, error)
	// Decrypt returns the recovered plaintext.
	Decrypt(ctx context.Context, req domaintypes.DecryptRequest) (string, error)
}
