package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-backend/internal/config"
	apperrors "crm-backend/internal/errors"
)

// WPPConnectClient talks to a WPPConnect server. Every session has its own bearer token,
// generated with the server secret key.
type WPPConnectClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewWPPConnectClient creates a new WPPConnect client
func NewWPPConnectClient(cfg *config.Config) *WPPConnectClient {
	return &WPPConnectClient{
		baseURL:    strings.TrimRight(cfg.WPPConnectBaseURL, "/"),
		secretKey:  cfg.WPPConnectSecretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether base URL and secret key are set
func (c *WPPConnectClient) Configured() bool {
	return c != nil && c.baseURL != "" && c.secretKey != ""
}

// WPPSessionState is the state reported by start-session and status-session
type WPPSessionState struct {
	Status string `json:"status"`
	QRCode string `json:"qrcode,omitempty"`
}

// WPPSentMessage identifies a message accepted by WPPConnect
type WPPSentMessage struct {
	ID string `json:"id"`
}

// GenerateToken creates the bearer token of a session
func (c *WPPConnectClient) GenerateToken(ctx context.Context, session string) (string, error) {
	var out struct {
		Status string `json:"status"`
		Token  string `json:"token"`
	}
	path := fmt.Sprintf("/api/%s/%s/generate-token", url.PathEscape(session), url.PathEscape(c.secretKey))
	if err := c.do(ctx, http.MethodPost, path, "", nil, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("wppconnect request failed: empty token for session %s", session)
	}
	return out.Token, nil
}

// StartSession starts a session and registers its webhook
func (c *WPPConnectClient) StartSession(ctx context.Context, session, token, webhookURL string) (*WPPSessionState, error) {
	body := map[string]interface{}{
		"webhook":    webhookURL,
		"waitQrCode": false,
	}
	var out WPPSessionState
	if err := c.do(ctx, http.MethodPost, "/api/"+url.PathEscape(session)+"/start-session", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status returns the current state of a session
func (c *WPPConnectClient) Status(ctx context.Context, session, token string) (*WPPSessionState, error) {
	var out WPPSessionState
	if err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(session)+"/status-session", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QRCode returns the pairing QR code as a data URI. The server answers with a PNG while a
// code is available and with JSON otherwise.
func (c *WPPConnectClient) QRCode(ctx context.Context, session, token string) (*WPPSessionState, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/"+url.PathEscape(session)+"/qrcode-session", token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		img, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read QR code: %w", err)
		}
		return &WPPSessionState{
			Status: SessionStatusQRCode,
			QRCode: "data:" + resp.Header.Get("Content-Type") + ";base64," + base64.StdEncoding.EncodeToString(img),
		}, nil
	}

	var out WPPSessionState
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode wppconnect response: %w", err)
	}
	return &out, nil
}

// SendMessage sends a text message to a phone number (digits only, no "+")
func (c *WPPConnectClient) SendMessage(ctx context.Context, session, token, phone, text string) (*WPPSentMessage, error) {
	body := map[string]interface{}{
		"phone":   strings.TrimPrefix(phone, "+"),
		"message": text,
		"isGroup": false,
	}
	var out struct {
		Status   string           `json:"status"`
		Response []WPPSentMessage `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/"+url.PathEscape(session)+"/send-message", token, body, &out); err != nil {
		return nil, err
	}
	if len(out.Response) == 0 {
		return &WPPSentMessage{}, nil
	}
	return &out.Response[0], nil
}

// Logout logs a session out of WhatsApp
func (c *WPPConnectClient) Logout(ctx context.Context, session, token string) error {
	return c.do(ctx, http.MethodPost, "/api/"+url.PathEscape(session)+"/logout-session", token, nil, nil)
}

func (c *WPPConnectClient) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	resp, err := c.send(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode wppconnect response: %w", err)
	}
	return nil
}

// send performs the request and returns the response of a 2xx status; the caller closes the body
func (c *WPPConnectClient) send(ctx context.Context, method, path, token string, in interface{}) (*http.Response, error) {
	if !c.Configured() {
		return nil, apperrors.ErrWPPConnectNotConfigured
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode wppconnect request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wppconnect request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("wppconnect request failed: status=%d body=%s", resp.StatusCode, string(msg))
	}
	return resp, nil
}
