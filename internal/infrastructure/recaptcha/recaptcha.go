package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/matifood/catalog-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verifier checks reCAPTCHA tokens against the siteverify endpoint. Calls go
// through a circuit breaker so an unreachable endpoint fails fast.
type Verifier struct {
	secret    string
	verifyURL string
	cb        *gobreaker.CircuitBreaker[[]byte]
}

func CreateVerifier(secret string, verifyURL string, cb *gobreaker.CircuitBreaker[[]byte]) *Verifier {
	return &Verifier{secret: secret, verifyURL: verifyURL, cb: cb}
}

// Verify returns errs.ErrRecaptchaFailed when the token is missing or
// rejected, and errs.ErrRecaptchaUnavailable when the endpoint cannot be
// reached or the breaker is open.
func (v *Verifier) Verify(ctx context.Context, token string, remoteIP string) error {
	if token == "" {
		return errs.ErrRecaptchaFailed
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	body, err := v.cb.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:     v.verifyURL,
			Method:  http.MethodPost,
			Body:    []byte(form.Encode()),
			Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		})
		if err != nil {
			return nil, err
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("siteverify returned status %d", statusCode)
		}
		return body, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "VerifyRecaptcha").Msg("")
		return fmt.Errorf("%w: %v", errs.ErrRecaptchaUnavailable, err)
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "VerifyRecaptcha").Msg("")
		return fmt.Errorf("%w: %v", errs.ErrRecaptchaUnavailable, err)
	}

	if !resp.Success {
		log.Ctx(ctx).Info().Strs("error_codes", resp.ErrorCodes).Msg("reCAPTCHA token rejected")
		return errs.ErrRecaptchaFailed
	}

	return nil
}
