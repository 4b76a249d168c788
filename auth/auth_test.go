// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
)

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
	}{
		{"IPv4", "192.168.1.1"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334"},
		{"localhost", "127.0.0.1"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip)

			// Should be 64 hex characters (32 bytes * 2)
			if len(hash) != 64 {
				t.Errorf("HashIP() length = %d, want 64", len(hash))
			}

			// Should be valid lowercase hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			if hash != HashIP(tt.ip) {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different IPs should produce different hashes
	if HashIP("192.168.1.1") == HashIP("192.168.1.2") {
		t.Error("HashIP() produced same hash for different IPs")
	}
}

func TestHashIP_KnownDigest(t *testing.T) {
	// Existing rows were written with plain SHA-256; hashes must stay comparable
	tests := []struct {
		ip   string
		want string
	}{
		{"127.0.0.1", "12ca17b49af2289436f303e0166030a21e525d266e209267433801a8fd4071a0"},
		{"203.0.113.7", "fec52565aa0cf18f57d7cf5b3ac728503b8992d2d6f7d46da1d1201090902b02"},
	}

	for _, tt := range tests {
		if got := HashIP(tt.ip); got != tt.want {
			t.Errorf("HashIP(%q) = %s, want %s", tt.ip, got, tt.want)
		}
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"valid", "Bearer s3cret", "s3cret", true},
		{"empty token", "Bearer ", "", true},
		{"missing header", "", "", false},
		{"lowercase scheme", "bearer s3cret", "", false},
		{"basic scheme", "Basic czNjcmV0", "", false},
		{"no space", "Bearers3cret", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			if ok != tt.wantOK {
				t.Errorf("BearerToken() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("BearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		presented string
		secret    string
		want      bool
	}{
		{"matching secret", "hunter2", "hunter2", true},
		{"wrong secret", "hunter3", "hunter2", false},
		{"prefix of secret", "hunter", "hunter2", false},
		{"empty credential", "", "hunter2", false},
		{"no secret configured", "anything", "", false},
		{"no secret and empty credential", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.presented, tt.secret); got != tt.want {
				t.Errorf("Authorize(%q, %q) = %v, want %v", tt.presented, tt.secret, got, tt.want)
			}
		})
	}
}

func TestAuthorizeHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		secret string
		want   bool
	}{
		{"valid bearer", "Bearer hunter2", "hunter2", true},
		{"raw secret without scheme", "hunter2", "hunter2", false},
		{"wrong bearer", "Bearer nope", "hunter2", false},
		{"missing header", "", "hunter2", false},
		{"empty bearer with no secret", "Bearer ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorizeHeader(tt.header, tt.secret); got != tt.want {
				t.Errorf("AuthorizeHeader(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

// Benchmark tests
func BenchmarkHashIP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HashIP("192.168.1.1")
	}
}
