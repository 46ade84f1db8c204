package middleware

import (
	"bytes"
	"net/http"

	"tradesdk/internal/consts"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
	"tradesdk/pkg/response"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

// 缓存中的响应，done 为 false 表示同一个 key 的请求还在处理
type cachedResponse struct {
	done        bool
	status      int
	contentType string
	body        []byte
}

type bodyWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency 带 Idempotency-Key 的请求只执行一次，重复请求直接返回第一次的响应
// 5xx 的响应不缓存，允许客户端重试
func Idempotency(size int) gin.HandlerFunc {
	if size <= 0 {
		size = 500
	}
	// 并发安全的 LRU 缓存，超过容量后淘汰最久未使用的 key
	cache, _ := lru.New(size)

	return func(c *gin.Context) {
		key := c.GetHeader(consts.HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		key = c.Request.Method + " " + c.FullPath() + " " + key

		if ok, _ := cache.ContainsOrAdd(key, &cachedResponse{}); ok {
			v, found := cache.Get(key)
			cached, _ := v.(*cachedResponse)
			if !found || cached == nil || !cached.done {
				response.JSON(c, errors.WithCode(ecode.ConflictErr, "request with the same Idempotency-Key is in progress"), nil)
				c.Abort()
				return
			}
			c.Header(consts.HeaderIdempotentHit, "true")
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		w := &bodyWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = w
		completed := false
		// handler panic 时释放 key，panic 继续交给外层 Recovery
		defer func() {
			if !completed {
				cache.Remove(key)
			}
		}()
		c.Next()
		completed = true

		status := w.Status()
		if status >= http.StatusInternalServerError {
			cache.Remove(key)
			return
		}
		cache.Add(key, &cachedResponse{
			done:        true,
			status:      status,
			contentType: w.Header().Get("Content-Type"),
			body:        w.buf.Bytes(),
		})
	}
}
