package otp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginOTPIsSixDigits(t *testing.T) {
	g := NewGenerator("seed")
	code := g.LoginOTP("12345", time.Now())
	assert.Len(t, code, 6)
	_, err := strconv.Atoi(code)
	assert.NoError(t, err)
}

func TestLoginOTPStableWithinStep(t *testing.T) {
	g := NewGenerator("seed")
	base := time.Unix(1700000010, 0) // start of a 30s step
	same := base.Add(5 * time.Second)
	assert.Equal(t, g.LoginOTP("12345", base), g.LoginOTP("12345", same))

	next := base.Add(30 * time.Second)
	assert.NotEqual(t, g.LoginOTP("12345", base), g.LoginOTP("12345", next))
}

func TestLoginOTPDiffersPerUser(t *testing.T) {
	g := NewGenerator("seed")
	now := time.Unix(1700000000, 0)
	assert.NotEqual(t, g.LoginOTP("12345", now), g.LoginOTP("67890", now))
}

func TestLoginOTPDiffersPerSeed(t *testing.T) {
	now := time.Unix(1700000000, 0)
	a := NewGenerator("seed-a").LoginOTP("12345", now)
	b := NewGenerator("seed-b").LoginOTP("12345", now)
	assert.NotEqual(t, a, b)
}

func TestResetCodeRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := ResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.True(t, n >= 100000 && n <= 999999, "code out of range: %d", n)
	}
}
