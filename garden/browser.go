// Browser-grade transport for channel page scraping.
//
// Channel pages sit behind third-party hosts that increasingly reject the
// default Go TLS Client Hello. This transport leverages
// refraction-networking/utls to emulate Chrome's fingerprint
// (HelloChrome_120), attempting an HTTP/2 connection first and transparently
// falling back to HTTP/1.1 when the handshake or negotiation fails.
package garden

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gardentv-cli/gardentv/constant"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const handshakeTimeout = 30 * time.Second

// browserTransport routes requests through Chrome-fingerprinted TLS
// connections, preferring h2 and retrying once over http/1.1.
type browserTransport struct {
	h2     *http2.Transport
	h2Once sync.Once
	h1     *http.Transport
}

func newBrowserTransport() *browserTransport {
	return &browserTransport{
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, network, addr, []string{"http/1.1"})
			},
		},
	}
}

func (t *browserTransport) getH2() *http2.Transport {
	t.h2Once.Do(func() {
		t.h2 = &http2.Transport{
			// Custom DialTLSContext supplies utls connections advertising
			// both h2 and http/1.1, matching natural Chrome behavior.
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, network, addr, nil)
			},
		}
	})
	return t.h2
}

// RoundTrip sets browser-like default headers on requests that carry none,
// then tries h2 followed by an http/1.1 fallback. Requests are bodiless GETs
// so the fallback can reuse the same request value.
func (t *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}
	if req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	}

	resp, err := t.getH2().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	return t.h1.RoundTrip(req)
}

// dialChrome opens a TLS connection mimicking Chrome 120's Client Hello.
// An empty protos list keeps Chrome's default ALPN advertisement (h2 plus
// http/1.1); passing http/1.1 alone forces the fallback protocol.
func dialChrome(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: handshakeTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
