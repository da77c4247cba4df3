package net

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
)

var ErrRetriesExhausted = errors.New("request failed after retry")

type retryingClient struct {
	client Client
	clock  clock.Clock
}

const maxRetries = 3

func NewRetryingClient(c Client, clk clock.Clock) Client {
	return &retryingClient{
		client: c,
		clock:  clk,
	}
}

// Do replays the request until it gets a response that is not a 5xx or a 429.
// Transport errors are retried too. The request's context is checked before
// every attempt and while waiting between attempts.
func (c *retryingClient) Do(orgReq *http.Request) (*http.Response, error) {
	var body []byte
	if orgReq.Body != nil {
		var err error
		body, err = ioutil.ReadAll(orgReq.Body)
		if err != nil {
			return nil, err
		}
		orgReq.Body.Close()
	}

	ctx := orgReq.Context()
	lastErr := ErrRetriesExhausted

	for i := 0; i < maxRetries+1; i++ {
		if err := c.delayForAttempt(orgReq, i); err != nil {
			return nil, err
		}

		req := orgReq.Clone(ctx)
		if orgReq.Body != nil {
			req.Body = ioutil.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		if retryable(resp.StatusCode) && i < maxRetries {
			resp.Body.Close()
			lastErr = fmt.Errorf("%w: last status %d", ErrRetriesExhausted, resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

var delays = [3][2]int{
	{250, 750},
	{375, 1125},
	{562, 1687},
}

func (c *retryingClient) delayForAttempt(req *http.Request, i int) error {
	ctx := req.Context()
	if i == 0 {
		return ctx.Err()
	}

	random := rand.Intn(delays[i-1][1]-delays[i-1][0]) + delays[i-1][0]

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(time.Duration(random) * time.Millisecond):
		return nil
	}
}
