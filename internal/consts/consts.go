package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	// 请求头
	HeaderRequestId      = "X-Request-Id"
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderIdempotentHit  = "X-Idempotent-Replay"
)
