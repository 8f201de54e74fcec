package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// SignFilePath membuat URL berbatas waktu untuk route /files, padanan
// lokal dari presigned URL storage eksternal. Tanda tangan mengikat
// path relatif dan waktu kedaluwarsa.
func SignFilePath(key, relPath string, ttl time.Duration) string {
	exp := time.Now().Add(ttl).Unix()
	sig := fileSignature(key, relPath, exp)
	return fmt.Sprintf("/files/%s?exp=%d&sig=%s", url.PathEscape(relPath), exp, sig)
}

// VerifyFilePath memeriksa tanda tangan dan kedaluwarsa untuk path relatif.
func VerifyFilePath(key, relPath, expStr, sig string) bool {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return false
	}
	if time.Now().Unix() > exp {
		return false
	}

	expected := fileSignature(key, relPath, exp)
	return hmac.Equal([]byte(expected), []byte(sig))
}

func fileSignature(key, relPath string, exp int64) string {
	mac := hmac.New(sha256.New, []byte(key))
	fmt.Fprintf(mac, "%s|%d", relPath, exp)
	return hex.EncodeToString(mac.Sum(nil))
}
