package fetchers

import (
	"io/ioutil"
	"time"

	"github.com/nzai/netop"
	"go.uber.org/zap"
)

// NetopFetcher download pages with retry
type NetopFetcher struct {
	retry         int
	retryInterval time.Duration
}

// NewNetopFetcher create netop page fetcher
func NewNetopFetcher(retry int, retryInterval time.Duration) *NetopFetcher {
	return &NetopFetcher{retry: retry, retryInterval: retryInterval}
}

// Fetch download page by url
func (f NetopFetcher) Fetch(url string) (*Response, error) {
	response, err := netop.Get(url, netop.Retry(f.retry, f.retryInterval))
	if err != nil {
		zap.L().Warn("download page failed", zap.Error(err), zap.String("url", url))
		return nil, err
	}
	defer response.Body.Close()

	buffer, err := ioutil.ReadAll(response.Body)
	if err != nil {
		zap.L().Warn("read response body failed", zap.Error(err), zap.String("url", url))
		return nil, err
	}

	return &Response{StatusCode: response.StatusCode, Body: string(buffer)}, nil
}
