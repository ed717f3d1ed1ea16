package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

const (
	loginOTPDigits = 6
	loginOTPPeriod = 30 // seconds, standard TOTP step
)

// Generator produces codes for both MFA flows: time-based login OTPs derived
// from a per-user secret, and random numeric reset codes. Codes are strings
// end-to-end so submitted and stored values always compare the same way.
type Generator struct {
	secret string
}

func NewGenerator(secret string) *Generator {
	return &Generator{secret: secret}
}

// LoginOTP returns the current time-based code for the user. The effective
// secret is the service seed concatenated with the user ID, so codes never
// collide across accounts.
func (g *Generator) LoginOTP(userID string, now time.Time) string {
	secret := []byte(g.secret + userID)
	counter := now.Unix() / loginOTPPeriod

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, secret)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	mod := 1
	for i := 0; i < loginOTPDigits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", loginOTPDigits, bin%mod)
}

// ResetCode returns a random 6-digit code in [100000, 999999].
func ResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
