// Package gateway talks to a Flutterwave-compatible payment provider.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EsHomes/internal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
	paymentOptions = "card,banktransfer,ussd"
)

type Config struct {
	BaseURL     string
	SecretKey   string
	PublicKey   string
	Currency    string
	RedirectURL string
	Timeout     time.Duration
}

type Client struct {
	cfg      Config
	client   *http.Client
	validate *validator.Validate
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
	}
}

func (c *Client) Currency() string {
	return c.cfg.Currency
}

// Initiate assembles the parameters for the client-side checkout widget.
func (c *Client) Initiate(tx *domain.Transaction, customer domain.Customer) domain.PaymentSession {
	return domain.PaymentSession{
		PublicKey:      c.cfg.PublicKey,
		TxRef:          tx.TxRef,
		Amount:         tx.Amount,
		Currency:       c.cfg.Currency,
		RedirectURL:    c.cfg.RedirectURL,
		PaymentOptions: paymentOptions,
		Customer:       customer,
	}
}

type verifyResponse struct {
	Status  string      `json:"status"  validate:"required"`
	Message string      `json:"message"`
	Data    *verifyData `json:"data"    validate:"required"`
}

type verifyData struct {
	ID       json.Number      `json:"id"`
	TxRef    string           `json:"tx_ref"   validate:"required"`
	Status   string           `json:"status"   validate:"required"`
	Amount   *decimal.Decimal `json:"amount"   validate:"required"`
	Currency string           `json:"currency" validate:"required"`
}

// Verify looks the payment up on the provider. Transport failures wrap
// domain.ErrGatewayUnreachable; bad status codes and malformed bodies wrap
// domain.ErrGateway.
func (c *Client) Verify(ctx context.Context, gatewayTxID string) (*domain.VerificationResult, error) {
	if gatewayTxID == "" {
		return nil, fmt.Errorf("%w: empty transaction id", domain.ErrGateway)
	}

	endpoint := fmt.Sprintf("%s/transactions/%s/verify", c.cfg.BaseURL, url.PathEscape(gatewayTxID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrGateway, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrGatewayUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: verify returned %d: %s", domain.ErrGateway, resp.StatusCode, snippet(body))
	}

	var vr verifyResponse
	if err = json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGateway, err)
	}
	if err = c.validate.Struct(&vr); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: malformed response: %s", domain.ErrGateway, verrs.Error())
		}
		return nil, fmt.Errorf("%w: validate response: %v", domain.ErrGateway, err)
	}

	return &domain.VerificationResult{
		Status:        vr.Status,
		PaymentStatus: vr.Data.Status,
		Amount:        *vr.Data.Amount,
		Currency:      vr.Data.Currency,
		GatewayTxID:   vr.Data.ID.String(),
		TxRef:         vr.Data.TxRef,
	}, nil
}

func snippet(b []byte) string {
	const limit = 200
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
