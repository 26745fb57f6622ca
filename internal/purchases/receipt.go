package purchases

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const receiptAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReceiptID mints a receipt identifier of the form
// RCP-<hex unix seconds, uppercase>-<6 random uppercase alphanumerics>.
// Receipt ids are correlation keys, not secrets; the random suffix only has
// to keep concurrent requests within the same second from colliding.
func NewReceiptID() string {
	return newReceiptIDAt(time.Now())
}

func newReceiptIDAt(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = receiptAlphabet[rand.IntN(len(receiptAlphabet))]
	}
	timestamp := strings.ToUpper(strconv.FormatInt(now.Unix(), 16))
	return fmt.Sprintf("RCP-%s-%s", timestamp, suffix)
}
