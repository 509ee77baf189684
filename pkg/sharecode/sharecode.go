package sharecode

import (
	"crypto/rand"
	"fmt"
	"io"
)

// 分享口令：IH- 前缀加5位大写字母/数字
// 不做全局唯一性检查，碰撞概率约为 1/36^5

const (
	prefix   = "IH-"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 5
)

// 252是不超过256的最大36倍数，超出的字节丢弃重采样，保证36个字符等概率
const rejectAbove = 252

// Generate 生成一个新的分享口令
func Generate() (string, error) {
	return generateFrom(rand.Reader)
}

func generateFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, 16)
	for len(out) < length {
		n, err := r.Read(buf)
		if err != nil {
			return "", fmt.Errorf("generate share code failed: %w", err)
		}
		for _, b := range buf[:n] {
			if b >= rejectAbove {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return prefix + string(out), nil
}
