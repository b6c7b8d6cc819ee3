package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/stpnv0/EsHomes/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	webhookHashHeader = "verif-hash"
	maxWebhookBody    = 1 << 20
)

// Checkout returns the parameters for the client-side payment widget.
func (h *Handler) Checkout(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "transaction")
	if !ok {
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id is required"})
		return
	}

	session, err := h.paymentService.Checkout(c.Request.Context(), id, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(session))
}

// VerifyTransaction re-checks an open transaction with the gateway.
func (h *Handler) VerifyTransaction(c *ginext.Context) {
	txRef := c.Param("id")

	var req dto.VerifyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.paymentService.Reverify(c.Request.Context(), txRef, req.TransactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(out))
}

// PaymentWebhook accepts the gateway's server-to-server notification.
// A success claim that fails verification is answered with 400.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	if h.opts.WebhookHash != "" {
		got := c.GetHeader(webhookHashHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.opts.WebhookHash)) != 1 {
			h.handleError(c, domain.ErrInvalidSignature)
			return
		}
	}

	var req dto.WebhookRequest
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed webhook payload"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.paymentService.HandleWebhook(c.Request.Context(), domain.PaymentReport{
		Event:         req.Event,
		TxRef:         req.Data.TxRef,
		GatewayTxID:   req.Data.ID.String(),
		Status:        req.Data.Status,
		Authenticated: h.opts.WebhookHash != "",
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ToReconcileResponse(out)
	if !out.Replayed && !out.Completed() && domain.IsPaymentSuccess(req.Data.Status) {
		c.Set("error", out.Reason)
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PaymentCallback handles the customer's browser coming back from the
// gateway and redirects to the success or failure page.
func (h *Handler) PaymentCallback(c *ginext.Context) {
	txRef := c.Query("tx_ref")

	out, err := h.paymentService.HandleRedirect(c.Request.Context(), domain.PaymentReport{
		TxRef:       txRef,
		GatewayTxID: c.Query("transaction_id"),
		Status:      c.Query("status"),
	})
	if err != nil {
		c.Set("error", err.Error())
		c.Redirect(http.StatusFound, withQuery(h.opts.FailureURL, "error", callbackMessage(err)))
		return
	}

	if !out.Completed() {
		reason := out.Reason
		if reason == "" {
			reason = "payment was not completed"
		}
		c.Redirect(http.StatusFound, withQuery(h.opts.FailureURL, "error", reason))
		return
	}

	c.Redirect(http.StatusFound, withQuery(h.opts.SuccessURL, "tx_ref", out.Transaction.TxRef))
}

func callbackMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "transaction not found"
	case errors.Is(err, domain.ErrGatewayUnreachable), errors.Is(err, domain.ErrGateway):
		return "could not verify payment, please contact support"
	case errors.Is(err, domain.ErrValidation):
		return "invalid payment response"
	}
	return "payment processing failed"
}

func withQuery(base, key, value string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
