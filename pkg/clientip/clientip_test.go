package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:41000"
	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "192.0.2.7", RealClientIP(r))

	r.RemoteAddr = "192.0.2.8"
	assert.Equal(t, "192.0.2.8", RealClientIP(r))
}

func TestForwarded(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "10.0.0.1", Forwarded(r))

	r.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", Forwarded(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", Forwarded(r))

	r.Header.Set("X-Forwarded-For", "garbage")
	assert.Equal(t, "198.51.100.4", Forwarded(r))
}

func TestFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.9")

	assert.Equal(t, "10.0.0.1", For(false)(r))
	assert.Equal(t, "203.0.113.9", For(true)(r))
}
