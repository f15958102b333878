package attack

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

func DelayURL(baseURL string, delayMs int, fail bool) string {
	url := baseURL + "/api/v1/delay/" + strconv.Itoa(delayMs)
	if fail {
		url += "?fail=true"
	}
	return url
}

func DelayTargeter(baseURL string, delayMs int, fail bool, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}
	url := DelayURL(baseURL, delayMs, fail)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = header
		return nil
	}
}

// MixedTargeter sends slowRatio of the traffic to the slow delay and the rest
// to the fast one. failRatio of all requests ask the server to fail.
func MixedTargeter(baseURL string, fastMs, slowMs int, slowRatio, failRatio float64, bypassSecret string) vegeta.Targeter {
	targets := map[[2]bool]vegeta.Targeter{
		{false, false}: DelayTargeter(baseURL, fastMs, false, bypassSecret),
		{false, true}:  DelayTargeter(baseURL, fastMs, true, bypassSecret),
		{true, false}:  DelayTargeter(baseURL, slowMs, false, bypassSecret),
		{true, true}:   DelayTargeter(baseURL, slowMs, true, bypassSecret),
	}

	return func(t *vegeta.Target) error {
		slow := rand.Float64() < slowRatio
		fail := rand.Float64() < failRatio
		return targets[[2]bool{slow, fail}](t)
	}
}
