package connecting

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// SignedRequest é o payload do signedRequest entregue pelo SDK junto do authResponse
type SignedRequest struct {
	Algorithm string `json:"algorithm"`
	UserID    string `json:"user_id"`
	IssuedAt  int64  `json:"issued_at"`
	Code      string `json:"code"`
}

// ParseSignedRequest valida a assinatura HMAC-SHA256 com o app secret e decodifica o payload
func ParseSignedRequest(signedRequest, appSecret string) (*SignedRequest, error) {
	encodedSig, payload, ok := strings.Cut(signedRequest, ".")
	if !ok || encodedSig == "" || payload == "" {
		return nil, ErrInvalidSignedRequest
	}

	sig, err := decodeSegment(encodedSig)
	if err != nil {
		return nil, ErrInvalidSignedRequest
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(payload))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, ErrInvalidSignedRequest
	}

	raw, err := decodeSegment(payload)
	if err != nil {
		return nil, ErrInvalidSignedRequest
	}

	var data SignedRequest
	if err := jsoniter.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidSignedRequest
	}

	if !strings.EqualFold(data.Algorithm, "HMAC-SHA256") {
		return nil, ErrInvalidSignedRequest
	}

	return &data, nil
}

// O SDK às vezes envia os segmentos com padding
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
