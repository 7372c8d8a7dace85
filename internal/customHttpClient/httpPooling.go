package customHttpClient

import (
	"net/http"

	"github.com/akolanti/StudyRAG/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

// PooledClient is shared by provider SDKs so repeated media and model calls
// reuse connections instead of re-dialing.
func PooledClient() *http.Client {
	return pooledClient
}
