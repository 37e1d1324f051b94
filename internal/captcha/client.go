package captcha

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Client — клиент reCAPTCHA siteverify.
type Client struct {
	Secret     string
	VerifyURL  string
	HTTPClient *http.Client
	DryRun     bool // dry-run режим: без секрета все токены считаются валидными
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewClient(secret string) *Client {
	return &Client{
		Secret:     secret,
		VerifyURL:  defaultVerifyURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		DryRun:     secret == "" || secret == "dry-run",
	}
}

// Verify спрашивает у Google, валиден ли токен капчи. (false, nil) —
// сервис ответил отказом; ошибка — сеть/кривой ответ.
func (c *Client) Verify(token string) (bool, error) {
	if c.DryRun {
		fmt.Printf("[captcha][dry-run] token=%q accepted\n", token)
		return true, nil
	}

	form := url.Values{
		"secret":   {c.Secret},
		"response": {token},
	}
	verifyURL := fmt.Sprintf("%s?%s", c.VerifyURL, form.Encode())

	resp, err := c.HTTPClient.Post(verifyURL, "application/json", nil)
	if err != nil {
		return false, fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("siteverify read body: %w", err)
	}

	var result verifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("siteverify parse response: %w", err)
	}
	return result.Success, nil
}
