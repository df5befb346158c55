package proxyspeller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	commonhttp "modalcopy/internal/common/http"
)

const jsonpCallback = "mycallback"

var spellerHeaders = map[string]string{
	"Referer":         "https://search.naver.com/",
	"Accept":          "application/json, text/javascript, */*; q=0.01",
	"Accept-Language": "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
}

// upstreamError is an error message reported inside a well-formed upstream response.
type upstreamError struct {
	message string
}

func (e *upstreamError) Error() string {
	return "speller error: " + e.message
}

func (e *upstreamError) invalidKey() bool {
	return strings.Contains(e.message, "유효한 키")
}

func isInvalidKey(err error) bool {
	var ue *upstreamError
	return errors.As(err, &ue) && ue.invalidKey()
}

type spellerClient struct {
	client *commonhttp.Client
	url    string
	now    func() time.Time
}

func (c *spellerClient) check(ctx context.Context, key, text string) (*upstreamResult, error) {
	params := url.Values{}
	params.Set("passportKey", key)
	params.Set("_callback", jsonpCallback)
	params.Set("q", text)
	params.Set("where", "nexearch")
	params.Set("color_blindness", "0")
	params.Set("_", strconv.FormatInt(c.now().UnixMilli(), 10))

	status, body, err := c.client.Get(ctx, c.url+"?"+params.Encode(), spellerHeaders)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("speller returned status %d", status)
	}

	return decodeUpstream(body)
}

func decodeUpstream(body []byte) (*upstreamResult, error) {
	var env upstreamEnvelope
	if err := json.Unmarshal(StripJSONP(body), &env); err != nil {
		return nil, fmt.Errorf("decode speller response: %w", err)
	}
	if env.Message != nil && env.Message.Error != nil {
		return nil, &upstreamError{message: *env.Message.Error}
	}
	if env.Message == nil || env.Message.Result == nil {
		return nil, errors.New("speller response has no result")
	}
	return env.Message.Result, nil
}

// StripJSONP removes a mycallback(...); wrapper. Other payloads pass through.
func StripJSONP(body []byte) []byte {
	s := strings.TrimSpace(string(body))
	prefix := jsonpCallback + "("
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, ");") {
		return []byte(s[len(prefix) : len(s)-2])
	}
	return []byte(s)
}
