package interfaces

import (
	"context"

	domaintypes "stegcalc/internal/domain/types"
)

// ExchangeService runs the encrypt and decrypt workflows and owns what the
// covert tool displays as their outcome.
type ExchangeService interface {
	Encrypt(ctx context.Context, req domaintypes.EncryptRequest) domaintypes.ExchangeResult
	Decrypt(ctx context.Context, req domaintypes.DecryptRequest) domaintypes.ExchangeResult
	Plaintext() string
	CopyVisible() bool
	Reset()
}
