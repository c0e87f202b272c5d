package customHttpClient

import (
	"net/http"

	"github.com/akolanti/LegalDocAPI/internal/config"
)

var pooledTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient is handed to the gemini client so both per-document
// calls reuse connections instead of paying the TLS handshake twice.
func GetPooledClient() *http.Client {
	return &http.Client{Transport: pooledTransport}
}
