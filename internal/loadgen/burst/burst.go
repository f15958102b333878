package burst

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"requestsmonitor/internal/loadgen/attack"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Result struct {
	Sent   int
	OK     int
	Failed int
}

// Run fires count requests to the delay endpoint at once and waits for all of
// them. Transport errors abort the burst; HTTP error statuses are counted.
func Run(ctx context.Context, client *http.Client, baseURL string, count, delayMs int, bypassSecret string) (Result, error) {
	fmt.Printf("Firing %d concurrent requests of %d ms...\n", count, delayMs)

	url := attack.DelayURL(baseURL, delayMs, false)
	var ok, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for range count {
		g.Go(func() error {
			status, err := get(gctx, client, url, bypassSecret)
			if err != nil {
				return err
			}
			if status >= 200 && status < 300 {
				ok.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("burst failed: %w", err)
	}

	res := Result{Sent: count, OK: int(ok.Load()), Failed: int(failed.Load())}
	fmt.Printf("Burst complete: %d ok, %d failed\n", res.OK, res.Failed)
	return res, nil
}

func get(ctx context.Context, client *http.Client, url, bypassSecret string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
