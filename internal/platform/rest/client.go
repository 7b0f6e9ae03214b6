// Package rest はバックエンド API への送信呼び出しを包みます。
// Call は決して error を返さず、常に構造化された Result を返します。
// この一様な契約により、呼び出し側は例外処理ではなく単純な条件分岐で
// 失敗を扱えます。
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Envelope は API 応答の共通ラッパー {success, message, data} です。
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Request は一回の API 呼び出しの内容です。
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Body          any
	Authenticated bool
}

// Result は呼び出しの結果です。Succeeded はトランスポート層の成否
// (2xx かどうか) のみを反映し、本文のデコード失敗では偽になりません。
type Result struct {
	Succeeded  bool
	StatusCode int
	Envelope   Envelope
}

// TokenSource は現在のベアラートークンを提供します。
type TokenSource interface {
	Token() string
}

// Client は API クライアントです。
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     *logrus.Entry
}

// NewClient は Client を生成します。
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logrus.Entry) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Call は API を呼び出します。ネットワーク障害もデコード失敗も Result に
// 畳み込まれ、error として伝播することはありません。
func (c *Client) Call(ctx context.Context, req Request) Result {
	requestID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.Path,
	})

	var body *bytes.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			log.WithError(err).Warn("failed to encode request body")
			return Result{}
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		log.WithError(err).Warn("failed to build request")
		return Result{}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.Authenticated {
		httpReq.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	started := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("api call failed")
		return Result{}
	}
	defer resp.Body.Close()

	result := Result{
		Succeeded:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
	}

	// デコード失敗は空のエンベロープとして扱い、Succeeded には影響させません。
	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
		result.Envelope = env
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(started),
	}).Debug("api call completed")

	return result
}
