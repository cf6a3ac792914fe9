package exchange_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"stegcalc/internal/domain"
	"stegcalc/internal/remote"
	"stegcalc/internal/services/exchange"
	"stegcalc/internal/status"
)

type fakeDownloads struct {
	offered map[string][]byte
	err     error
}

func (d *fakeDownloads) Offer(name string, data []byte) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if d.offered == nil {
		d.offered = make(map[string][]byte)
	}
	d.offered[name] = data
	return "/downloads/" + name, nil
}

// stubService counts requests and answers like the remote service would.
type stubService struct {
	calls   atomic.Int32
	handler http.HandlerFunc
}

func (s *stubService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)
	s.handler(w, r)
}

func newHarness(t *testing.T, h http.HandlerFunc) (*exchange.Service, *stubService, *fakeDownloads, *status.Slot) {
	t.Helper()
	stub := &stubService{handler: h}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	dl := &fakeDownloads{}
	st := status.New()
	svc := exchange.New(remote.New(srv.URL, srv.Client()), dl, st, nil)
	return svc, stub, dl, st
}

var img = domain.Image{Name: "cover.png", Data: []byte("\x89PNG\r\n\x1a\n....")}

func TestEncrypt_MissingFieldNeverCallsService(t *testing.T) {
	svc, stub, dl, st := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	for _, req := range []domain.EncryptRequest{
		{Password: "pw", CoverImage: img},
		{Message: "hi", CoverImage: img},
		{Message: "hi", Password: "pw"},
		{Message: "hi", Password: "pw", CoverImage: domain.Image{Name: "empty.png"}},
	} {
		res := svc.Encrypt(context.Background(), req)
		require.False(t, res.OK)
		require.Equal(t, exchange.MsgEncryptFieldsRequired, st.Text())
	}
	require.Zero(t, stub.calls.Load())
	require.Empty(t, dl.offered)
}

func TestEncrypt_OffersSecretPNG(t *testing.T) {
	var progress []string
	svc, stub, dl, st := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("carrier"))
	})
	st.OnChange(func(s string) { progress = append(progress, s) })

	res := svc.Encrypt(context.Background(), domain.EncryptRequest{Message: "hi", Password: "pw", CoverImage: img})
	require.True(t, res.OK)
	require.Equal(t, []byte("carrier"), res.Payload)
	require.Equal(t, []byte("carrier"), dl.offered["secret.png"])
	require.Equal(t, int32(1), stub.calls.Load())
	require.Equal(t, []string{exchange.MsgEncrypting, exchange.MsgEncrypted}, progress)
}

func TestEncrypt_ServiceError(t *testing.T) {
	svc, _, dl, st := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"cannot identify image file"}`)
	})

	res := svc.Encrypt(context.Background(), domain.EncryptRequest{Message: "hi", Password: "pw", CoverImage: img})
	require.False(t, res.OK)
	require.Equal(t, "cannot identify image file", res.Message)
	require.Equal(t, "Error: cannot identify image file", st.Text())
	require.Empty(t, dl.offered)
}

func TestEncrypt_DownloadFailure(t *testing.T) {
	svc, _, dl, st := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("carrier"))
	})
	dl.err = errors.New("disk full")

	res := svc.Encrypt(context.Background(), domain.EncryptRequest{Message: "hi", Password: "pw", CoverImage: img})
	require.False(t, res.OK)
	require.Equal(t, "Error: disk full", st.Text())
}

func decryptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.FormValue("password") != "pw" {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad password"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "attack at dawn"})
}

func TestDecrypt_Success(t *testing.T) {
	svc, _, _, st := newHarness(t, decryptHandler)

	res := svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img})
	require.True(t, res.OK)
	require.Equal(t, "attack at dawn", svc.Plaintext())
	require.True(t, svc.CopyVisible())
	require.Equal(t, exchange.MsgDecrypted, st.Text())
}

func TestDecrypt_ClearsPreviousResultFirst(t *testing.T) {
	var svc *exchange.Service
	var sawDuringRequest string
	var copyDuringRequest bool
	first := true
	svc, _, _, _ = newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		if !first {
			sawDuringRequest = svc.Plaintext()
			copyDuringRequest = svc.CopyVisible()
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "second"})
			return
		}
		first = false
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "first"})
	})

	require.True(t, svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img}).OK)
	require.Equal(t, "first", svc.Plaintext())

	require.True(t, svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img}).OK)
	require.Empty(t, sawDuringRequest)
	require.False(t, copyDuringRequest)
	require.Equal(t, "second", svc.Plaintext())
}

func TestDecrypt_BadPassword(t *testing.T) {
	svc, _, _, st := newHarness(t, decryptHandler)
	require.True(t, svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img}).OK)

	res := svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "nope", StegoImage: img})
	require.False(t, res.OK)
	require.Equal(t, "bad password", res.Message)
	require.Equal(t, "Error: bad password", st.Text())
	require.Empty(t, svc.Plaintext())
	require.False(t, svc.CopyVisible())
}

func TestDecrypt_MissingFieldHidesOldResult(t *testing.T) {
	svc, stub, _, st := newHarness(t, decryptHandler)
	require.True(t, svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img}).OK)

	res := svc.Decrypt(context.Background(), domain.DecryptRequest{StegoImage: img})
	require.False(t, res.OK)
	require.Equal(t, exchange.MsgDecryptFieldsRequired, st.Text())
	require.Empty(t, svc.Plaintext())
	require.False(t, svc.CopyVisible())
	require.Equal(t, int32(1), stub.calls.Load())
}

func TestDecrypt_TransportFailureReachesTerminalStatus(t *testing.T) {
	svc, _, _, st := newHarness(t, decryptHandler)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.Decrypt(ctx, domain.DecryptRequest{Password: "pw", StegoImage: img})
	require.False(t, res.OK)
	require.Contains(t, st.Text(), "Error: decrypt:")
}

func TestReset(t *testing.T) {
	svc, _, _, _ := newHarness(t, decryptHandler)
	require.True(t, svc.Decrypt(context.Background(), domain.DecryptRequest{Password: "pw", StegoImage: img}).OK)

	svc.Reset()
	require.Empty(t, svc.Plaintext())
	require.False(t, svc.CopyVisible())
}
