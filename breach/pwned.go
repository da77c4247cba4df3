package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/net"
)

const DefaultRangeURL = "https://api.pwnedpasswords.com"

const prefixLength = 5

type PwnedOracle struct {
	client  net.Client
	baseURL string
}

func NewPwnedOracle(client net.Client, baseURL string) *PwnedOracle {
	if baseURL == "" {
		baseURL = DefaultRangeURL
	}

	return &PwnedOracle{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// HashPrefix splits the uppercase hex SHA-1 of password into the part that is
// sent to the service and the part that is only compared locally. SHA-1 is
// what the range API is keyed on; it is not used here for its strength.
func HashPrefix(password string) (string, string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	return digest[:prefixLength], digest[prefixLength:]
}

func (o *PwnedOracle) Check(ctx context.Context, password string) (bool, error) {
	count, err := o.Lookup(ctx, password)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Lookup returns how many times password was seen in the corpus.
func (o *PwnedOracle) Lookup(ctx context.Context, password string) (int, error) {
	prefix, suffix := HashPrefix(password)

	logger := lgctx.WithSession(ctx, "check-breach", lager.Data{"prefix": prefix})
	logger.Debug("starting")
	defer logger.Debug("done")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/range/"+prefix, nil)
	if err != nil {
		logger.Error("failed-to-build-request", err)
		return 0, err
	}
	request.Header.Set("Add-Padding", "true")
	request.Header.Set("User-Agent", "pass-alert")

	response, err := o.client.Do(request)
	if err != nil {
		logger.Error("failed", err)
		return 0, &UnavailableError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		err := &StatusError{StatusCode: response.StatusCode}
		logger.Error("unexpected-status", err)
		return 0, err
	}

	count, err := findSuffix(response, suffix)
	if err != nil {
		logger.Error("failed-to-read-range", err)
		return 0, &UnavailableError{Err: err}
	}

	logger.Debug("found", lager.Data{"breached": count > 0})

	return count, nil
}

// findSuffix reads "SUFFIX[:COUNT]" lines. Padding rows have a count of zero.
// A row without a count is taken as one sighting.
func findSuffix(response *http.Response, suffix string) (int, error) {
	scanner := bufio.NewScanner(response.Body)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, countText := line, ""
		if i := strings.IndexByte(line, ':'); i >= 0 {
			candidate, countText = line[:i], line[i+1:]
		}

		if !strings.EqualFold(candidate, suffix) {
			continue
		}

		if countText == "" {
			return 1, nil
		}

		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return 0, fmt.Errorf("malformed count %q", countText)
		}

		return count, nil
	}

	return 0, scanner.Err()
}
