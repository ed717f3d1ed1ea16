package sms

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSSender delivers reset codes through an HTTP SMS gateway.
type SMSSender struct {
	baseURL  string
	senderID string
	userID   string
	password string
	client   *http.Client
}

func NewSMSSender(baseURL, senderID, userID, password string) *SMSSender {
	return &SMSSender{
		baseURL:  baseURL,
		senderID: senderID,
		userID:   userID,
		password: password,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSSender) Send(ctx context.Context, recipient, body string) error {
	start := time.Now()

	form := url.Values{}
	form.Set("userid", s.userID)
	form.Set("password", s.password)
	form.Set("senderid", s.senderID)
	form.Set("sendMethod", "quick")
	form.Set("msgType", "text")
	form.Set("msg", body)
	form.Set("mobile", recipient)
	form.Set("duplicatecheck", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[SMS] send failed | recipient=%s err=%v", recipient, err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= 300 {
		log.Printf("[SMS] gateway rejected | status=%d body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	log.Printf("[SMS] sent | recipient=%s took=%s", recipient, time.Since(start))
	return nil
}
