package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"joyit/internal/config"
	"joyit/internal/domain"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("amount mismatch")
	ErrNotConfigured    = errors.New("payment gateway is not configured")
	ErrUnknownInvoice   = errors.New("unknown invoice")
)

// Price of one credit in gateway currency.
const creditUnitPrice = 1.0

type Service struct {
	payments paymentRepo
	orders   orderConfirmer
	credits  creditGranter
	loggerf  func(format string, args ...interface{})

	cfg config.Gateway
}

func NewService(payments paymentRepo, orders orderConfirmer, credits creditGranter, cfg config.Gateway, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments: payments,
		orders:   orders,
		credits:  credits,
		loggerf:  loggerf,
		cfg:      cfg,
	}
}

// InitOrderCheckout creates a checkout session for a pending service order
// and returns the signed gateway URL.
func (s *Service) InitOrderCheckout(ctx context.Context, order *domain.ServiceOrder) (string, int64, error) {
	amount := formatAmount(order.TotalCost)
	orderID := order.ID
	p := &domain.Payment{
		CompanyID: order.CompanyID,
		Purpose:   domain.PurposeOrder,
		OrderID:   &orderID,
		Amount:    amount,
	}
	return s.initCheckout(ctx, p, fmt.Sprintf("Service order #%d", order.ID))
}

// InitTopUp creates a checkout session for purchased credits.
func (s *Service) InitTopUp(ctx context.Context, companyID, credits int64) (string, int64, error) {
	p := &domain.Payment{
		CompanyID: companyID,
		Purpose:   domain.PurposeCreditTopUp,
		Credits:   credits,
		Amount:    formatAmount(float64(credits) * creditUnitPrice),
	}
	return s.initCheckout(ctx, p, fmt.Sprintf("Credit top-up, %d credits", credits))
}

func (s *Service) initCheckout(ctx context.Context, p *domain.Payment, description string) (string, int64, error) {
	if s.cfg.MerchantID == "" || s.cfg.Secret == "" {
		return "", 0, ErrNotConfigured
	}

	p.InvID = time.Now().UnixNano()
	p.Status = domain.PaymentCreated
	p.Signature = s.sign(p.InvID, p.Amount)

	u := url.Values{}
	u.Set("MerchantId", s.cfg.MerchantID)
	u.Set("Amount", p.Amount)
	u.Set("InvId", strconv.FormatInt(p.InvID, 10))
	u.Set("Description", description)
	u.Set("Signature", p.Signature)
	u.Set("IsTest", s.cfg.IsTest)
	if s.cfg.ResultURL != "" {
		u.Set("ResultURL", s.cfg.ResultURL)
	}
	if s.cfg.SuccessURL != "" {
		u.Set("SuccessURL", s.cfg.SuccessURL)
	}
	p.CheckoutURL = s.cfg.BaseURL + "?" + u.Encode()

	if err := s.payments.Create(ctx, p); err != nil {
		return "", 0, fmt.Errorf("save payment failed: %w", err)
	}

	return p.CheckoutURL, p.InvID, nil
}

// HandleCallback processes the gateway result webhook. Signature and amount
// are verified before anything is mutated. Marking paid is idempotent, and
// the follow-up actions (order activation, credit top-up) are idempotent per
// invoice, so a failed follow-up is not acked and the gateway's redelivery
// repairs it without applying anything twice.
func (s *Service) HandleCallback(ctx context.Context, invID int64, amount, signature, rawBody string) (string, error) {
	valid := hmac.Equal([]byte(signature), []byte(s.sign(invID, amount)))
	s.loggerf("level=info msg=payment callback signature validation inv_id=%d signature_valid=%t", invID, valid)
	if !valid {
		_ = s.payments.MarkFailed(ctx, invID, rawBody, "invalid signature")
		return "", ErrInvalidSignature
	}

	p, err := s.payments.GetByInvID(ctx, invID)
	if err != nil {
		return "", ErrUnknownInvoice
	}
	if amount != p.Amount {
		reason := fmt.Sprintf("amount mismatch callback=%s expected=%s", amount, p.Amount)
		_ = s.payments.MarkFailed(ctx, invID, rawBody, reason)
		return "", ErrAmountMismatch
	}

	changed, err := s.payments.MarkPaidIdempotent(ctx, invID, rawBody, time.Now().UTC())
	if err != nil {
		return "", err
	}
	if !changed {
		s.loggerf("level=info msg=idempotent callback already paid inv_id=%d", invID)
	}

	// Dispatch on every verified delivery, not only the first. Both targets
	// are idempotent per invoice, and returning the error withholds the ack
	// so the gateway redelivers until the follow-up lands.
	if err := s.dispatch(ctx, p, invID); err != nil {
		return "", err
	}

	return "OK" + strconv.FormatInt(invID, 10), nil
}

func (s *Service) dispatch(ctx context.Context, p *domain.Payment, invID int64) error {
	switch p.Purpose {
	case domain.PurposeOrder:
		if p.OrderID == nil {
			return nil
		}
		if err := s.orders.ConfirmPayment(ctx, *p.OrderID); err != nil {
			s.loggerf("level=error msg=failed to activate order after payment order_id=%d err=%v", *p.OrderID, err)
			return err
		}
	case domain.PurposeCreditTopUp:
		note := "top-up inv " + strconv.FormatInt(invID, 10)
		if err := s.credits.ApplyTopUp(ctx, p.CompanyID, p.Credits, note); err != nil {
			s.loggerf("level=error msg=failed to apply credit top-up company_id=%d err=%v", p.CompanyID, err)
			return err
		}
	}
	return nil
}

func (s *Service) sign(invID int64, amount string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.Secret))
	fmt.Fprintf(mac, "%s:%s:%d", s.cfg.MerchantID, amount, invID)
	return hex.EncodeToString(mac.Sum(nil))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
