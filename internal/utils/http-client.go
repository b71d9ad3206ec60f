package utils

import (
	"net"
	"net/http"
	"time"
)

// CreateHTTPClient builds a client with a connection pool sized to the
// number of concurrent workers. The client carries no overall timeout;
// callers bound each request with a context deadline.
func CreateHTTPClient(connectTimeout time.Duration, readTimeout time.Duration, maxConcurrent int) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: readTimeout,
		MaxIdleConns:          maxConcurrent * 2,
		MaxIdleConnsPerHost:   maxConcurrent,
		IdleConnTimeout:       90 * time.Second,
		DisableCompression:    true,
	}
	return &http.Client{
		Transport: transport,
	}
}
