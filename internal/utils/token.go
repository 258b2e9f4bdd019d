package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateInterviewToken derives the short link token for a scheduled
// interview. Ten hex characters keeps links short; uniqueness is enforced
// by the database index, not the digest.
func GenerateInterviewToken(candidateName, role, roundName string) string {
	raw := fmt.Sprintf("%s_%s_%s_%s", candidateName, role, roundName, time.Now().Format("20060102150405.000000000"))
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])[:10]
}
