package main

import "testing"

func TestListenAddr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare port", "8080", ":8080"},
		{"colon prefix", ":9090", ":9090"},
		{"host and port", "127.0.0.1:8080", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := listenAddr(tt.input); got != tt.expected {
				t.Fatalf("listenAddr(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
