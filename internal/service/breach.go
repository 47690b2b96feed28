package service

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// prefixLength is the number of leading hash characters sent to the
// range API. The remaining 35 characters never leave the process.
const prefixLength = 5

// BreachChecker reports whether a password appears in a known breach
// corpus. Implementations must never transmit the full password or its
// full hash.
type BreachChecker interface {
	IsCompromised(ctx context.Context, password string) (bool, error)
}

type hibpBreachChecker struct {
	baseURL string
	client  *http.Client
}

// NewBreachChecker creates a BreachChecker backed by a k-anonymity range
// API such as the Have I Been Pwned password service. The timeout bounds
// every lookup; failed lookups are not retried.
func NewBreachChecker(baseURL string, timeout time.Duration) BreachChecker {
	return &hibpBreachChecker{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *hibpBreachChecker) IsCompromised(ctx context.Context, password string) (bool, error) {
	sum := sha1.Sum([]byte(password))
	fingerprint := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := fingerprint[:prefixLength], fingerprint[prefixLength:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+prefix, nil)
	if err != nil {
		return false, fmt.Errorf("building breach check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBreachUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: unexpected status %d", ErrBreachUnavailable, resp.StatusCode)
	}

	// Response lines look like "SUFFIX:COUNT" for every breached hash
	// sharing the requested prefix.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		candidate, _, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		if candidate == suffix {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBreachUnavailable, err)
	}

	return false, nil
}
