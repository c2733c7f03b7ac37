package trimble

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Client exposes the two Trimble AMS operations consumed by the portal.
type Client interface {
	FetchOrders(ctx context.Context, filter OrderFilter) ([]RawOrder, error)
	FetchUnits(ctx context.Context, filter UnitFilter) ([]RawUnit, error)
}

// SOAPClient implements Client against the AMS integration toolkit endpoint.
type SOAPClient struct {
	endpoint   string
	header     soapHeader
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSOAPClient creates a Trimble client with a bounded request timeout.
func NewSOAPClient(endpoint, username, password string, timeout time.Duration, logger *slog.Logger) (*SOAPClient, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse trimble url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("trimble url must be absolute")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SOAPClient{
		endpoint: parsed.String(),
		header:   soapHeader{UserName: username, Password: password},
		logger:   logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchOrders runs GetOrderDetails and returns the raw order list. Zero
// matching orders yields an empty slice, not an error.
func (c *SOAPClient) FetchOrders(ctx context.Context, filter OrderFilter) ([]RawOrder, error) {
	var res orderListingEnvelope
	if err := c.call(ctx, actionGetOrderDetails, newOrderEnvelope(c.header, filter), &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// FetchUnits runs GetUnitDetails and returns the raw unit list.
func (c *SOAPClient) FetchUnits(ctx context.Context, filter UnitFilter) ([]RawUnit, error) {
	var res unitListingEnvelope
	if err := c.call(ctx, actionGetUnitDetails, newUnitEnvelope(c.header, filter), &res); err != nil {
		return nil, err
	}
	return res.Units, nil
}

func (c *SOAPClient) call(ctx context.Context, action string, envelope, result any) error {
	payload, err := xml.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	body := append([]byte(xml.Header), payload...)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml")
	req.Header.Set("SOAPAction", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("trimble request failed",
			slog.String("action", action),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return fmt.Errorf("trimble error: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decode trimble response: %w", err)
	}
	return nil
}
