package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/logger"
	"finpredictor/internal/middleware"
)

// Failure codes of the gateway error body.
const (
	CodeUpstreamConnect = "upstream_connect_error"
	CodeGatewayFailure  = "gateway_exception"
)

// allowedHeaders are forwarded by default.
var allowedHeaders = []string{"Content-Type", "Accept", "Authorization"}

// hopHeaders apply to a single connection and are never forwarded.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Proxy forwards requests to the upstream of the matching route. Each request
// is sent exactly once; the client timeout bounds the upstream call.
type Proxy struct {
	routes     *RouteTable
	client     *http.Client
	forwardAll bool
	log        *zap.SugaredLogger
}

// Option configures a Proxy.
type Option func(*Proxy)

// WithForwardAllHeaders forwards every end-to-end request header instead of
// the Content-Type, Accept and Authorization allow-list.
func WithForwardAllHeaders(enabled bool) Option {
	return func(p *Proxy) { p.forwardAll = enabled }
}

// NewProxy creates a new Proxy. Upstream redirects are relayed to the caller,
// never followed.
func NewProxy(routes *RouteTable, client *http.Client, opts ...Option) *Proxy {
	if client == nil {
		client = &http.Client{}
	}
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	p := &Proxy{routes: routes, client: &c, log: logger.Named("gateway")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle is the gin handler for every proxied path.
func (p *Proxy) Handle(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.fail(c, http.StatusInternalServerError, CodeGatewayFailure, fmt.Sprint(r))
		}
	}()

	route, rest, ok := p.routes.Match(c.Request.URL.EscapedPath())
	if !ok {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.URL.Path))
		return
	}

	// CORS preflight is answered here, never upstream.
	if c.Request.Method == http.MethodOptions {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		p.fail(c, http.StatusInternalServerError, CodeGatewayFailure, fmt.Sprintf("reading request body: %v", err))
		return
	}
	var reqBody io.Reader = http.NoBody
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}

	// The upstream call outlives a disconnected client.
	ctx := context.WithoutCancel(c.Request.Context())
	target := route.target(rest, c.Request.URL.RawQuery)
	req, err := http.NewRequestWithContext(ctx, c.Request.Method, target, reqBody)
	if err != nil {
		p.fail(c, http.StatusInternalServerError, CodeGatewayFailure, fmt.Sprintf("creating upstream request: %v", err))
		return
	}
	p.copyHeaders(req.Header, c.Request.Header)
	if id := middleware.RequestID(c); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.fail(c, http.StatusBadGateway, CodeUpstreamConnect, err.Error())
		return
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		p.fail(c, http.StatusBadGateway, CodeUpstreamConnect, fmt.Sprintf("reading upstream response: %v", err))
		return
	}

	p.log.Debugw("proxied",
		"request_id", middleware.RequestID(c),
		"prefix", route.Prefix,
		"method", req.Method,
		"target", target,
		"status", resp.StatusCode,
	)

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		c.Data(resp.StatusCode, ct, respBody)
		return
	}
	c.Status(resp.StatusCode)
	_, _ = c.Writer.Write(respBody)
}

// copyHeaders copies the forwarded subset of in to out.
func (p *Proxy) copyHeaders(out, in http.Header) {
	if !p.forwardAll {
		for _, h := range allowedHeaders {
			if v := in.Values(h); len(v) > 0 {
				out[h] = append([]string(nil), v...)
			}
		}
		return
	}

	// Only Content-Type is relayed back, so the body must arrive decoded.
	skip := map[string]bool{
		"Host":            true,
		"Content-Length":  true,
		"Accept-Encoding": true,
	}
	for _, h := range hopHeaders {
		skip[h] = true
	}
	for _, v := range in.Values("Connection") {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				skip[http.CanonicalHeaderKey(name)] = true
			}
		}
	}
	for name, v := range in {
		if skip[http.CanonicalHeaderKey(name)] {
			continue
		}
		out[name] = append([]string(nil), v...)
	}
}

func (p *Proxy) fail(c *gin.Context, status int, code, detail string) {
	p.log.Warnw("proxy failure",
		"request_id", middleware.RequestID(c),
		"path", c.Request.URL.Path,
		"status", status,
		"error", code,
		"detail", detail,
	)
	c.AbortWithStatusJSON(status, gin.H{"error": code, "detail": detail})
}
