package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

// ErrDeclined marks authorization, capture, or charge refusals by the payment
// provider. Callers surface it as a retryable payment failure, distinct from
// transport errors.
var ErrDeclined = errors.New("payment declined")

// Gateway is the card processor used for queue authorization holds, reading
// captures, expo checkouts, and payment links. Amounts are integer cents.
//
//go:generate mockgen -destination=mocks/gateway.go -package=mocks spiriverse/outbound/payment Gateway
type Gateway interface {
	Authorize(ctx context.Context, token string, amount int64) (string, error)
	Capture(ctx context.Context, authorizationId string, amount int64) error
	Void(ctx context.Context, authorizationId string) error
	Charge(ctx context.Context, token string, amount int64) (string, error)
	Refund(ctx context.Context, chargeId string) error
}

type HttpGateway struct {
	Cfg *viper.Viper

	client  *http.Client
	baseUrl string
	apiKey  string
}

func (out *HttpGateway) Init() {
	out.baseUrl = out.Cfg.GetString("payment.base_url")
	out.apiKey = out.Cfg.GetString("payment.api_key")
	out.client = &http.Client{
		Timeout: out.Cfg.GetDuration("payment.timeout"),
	}
}

type gatewayResponse struct {
	Id string `json:"id"`
}

func (out *HttpGateway) Authorize(ctx context.Context, token string, amount int64) (string, error) {
	return out.post(ctx, "/v1/authorizations", map[string]any{
		"payment_method_token": token,
		"amount":               amount,
	})
}

func (out *HttpGateway) Capture(ctx context.Context, authorizationId string, amount int64) error {
	_, err := out.post(ctx, fmt.Sprintf("/v1/authorizations/%s/capture", authorizationId), map[string]any{
		"amount": amount,
	})
	return err
}

func (out *HttpGateway) Void(ctx context.Context, authorizationId string) error {
	_, err := out.post(ctx, fmt.Sprintf("/v1/authorizations/%s/void", authorizationId), nil)
	return err
}

func (out *HttpGateway) Charge(ctx context.Context, token string, amount int64) (string, error) {
	return out.post(ctx, "/v1/charges", map[string]any{
		"payment_method_token": token,
		"amount":               amount,
	})
}

func (out *HttpGateway) Refund(ctx context.Context, chargeId string) error {
	_, err := out.post(ctx, fmt.Sprintf("/v1/charges/%s/refund", chargeId), nil)
	return err
}

func (out *HttpGateway) post(ctx context.Context, path string, body map[string]any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, out.baseUrl+path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+out.apiKey)

	resp, err := out.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity {
		return "", ErrDeclined
	}

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("payment gateway status %d", resp.StatusCode)
	}

	var result gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.Id, nil
}
