package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Template names understood by the email relay.
const (
	templateNewQuotation         = "new_quotation"
	templateQuotationApproved    = "quotation_approved"
	templateQuotationRejected    = "quotation_rejected"
	templateReservationConfirmed = "reservation_confirmed"
	templateEventReminder        = "event_reminder"
)

// EmailNotifier posts {template, data} to a single relay endpoint. A non-2xx
// response is a failure; failures are logged and never retried or returned,
// so a broken relay cannot fail the state change that triggered the send.
type EmailNotifier struct {
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

func NewEmailNotifier(endpoint string, timeout time.Duration, logger logger.Logger) *EmailNotifier {
	if endpoint == "" {
		logger.Warn("email endpoint is empty, email notifications disabled")
	}

	return &EmailNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (n *EmailNotifier) NotifyNewQuotation(ctx context.Context, q *domain.Quotation) {
	n.send(ctx, templateNewQuotation, quotationPayload(q, ""))
}

func (n *EmailNotifier) NotifyQuotationApproved(ctx context.Context, q *domain.Quotation) {
	n.send(ctx, templateQuotationApproved, quotationPayload(q, ""))
}

func (n *EmailNotifier) NotifyQuotationRejected(ctx context.Context, q *domain.Quotation, reason string) {
	n.send(ctx, templateQuotationRejected, quotationPayload(q, reason))
}

func (n *EmailNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, templateReservationConfirmed, reservationPayload(r))
}

func (n *EmailNotifier) NotifyEventReminder(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, templateEventReminder, reservationPayload(r))
}

func quotationPayload(q *domain.Quotation, reason string) map[string]any {
	payload := map[string]any{
		"name":         q.Name,
		"email":        q.Email,
		"phone":        q.Phone,
		"event_type":   q.EventType,
		"event_date":   q.EventDate,
		"headcount":    q.Headcount,
		"service_tier": q.ServiceTier,
		"total":        q.Total,
	}
	if reason != "" {
		payload["reason"] = reason
	}
	return payload
}

func reservationPayload(r *domain.Reservation) map[string]any {
	return map[string]any{
		"name":         r.Name,
		"email":        r.Email,
		"phone":        r.Phone,
		"event_type":   r.EventType,
		"event_date":   r.EventDate,
		"headcount":    r.Headcount,
		"service_tier": r.ServiceTier,
		"total":        r.Total,
	}
}

func (n *EmailNotifier) send(ctx context.Context, template string, data map[string]any) {
	if n.endpoint == "" {
		n.logger.Debug("email skipped (relay disabled)", logger.String("template", template))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("template", template))
		return
	}

	body, err := json.Marshal(map[string]any{
		"template": template,
		"data":     data,
	})
	if err != nil {
		n.logger.Error("failed to encode email payload",
			logger.String("template", template),
			logger.String("error", err.Error()),
		)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("failed to build email request",
			logger.String("template", template),
			logger.String("error", err.Error()),
		)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error("failed to send email",
			logger.String("template", template),
			logger.String("error", err.Error()),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Error("email relay rejected the message",
			logger.String("template", template),
			logger.Int("status", resp.StatusCode),
		)
		return
	}

	n.logger.Debug("email dispatched", logger.String("template", template))
}
