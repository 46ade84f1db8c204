package uuid

import (
	"strings"

	guuid "github.com/google/uuid"
)

// GenUUID 生成标准的 uuid v4 字符串，用作订单id、成交id
func GenUUID() string {
	return guuid.NewString()
}

// GenUUID16 生成16位的短id，用于requestId
func GenUUID16() string {
	return strings.ReplaceAll(guuid.NewString(), "-", "")[:16]
}
