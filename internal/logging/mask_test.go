// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "JSON login body",
			input:    `{"email":"dev@example.org","password":"hunter2"}`,
			expected: `{"email":"dev@example.org","password":"***"}`,
		},
		{
			name:     "JSON password with escaped quote",
			input:    `{"password": "a\"b", "name":"x"}`,
			expected: `{"password": "***", "name":"x"}`,
		},
		{
			name:     "Cookie header",
			input:    "Cookie: session=abc123",
			expected: "Cookie: ***",
		},
		{
			name:     "Set-Cookie header in dump",
			input:    "HTTP/1.1 200 OK\r\nSet-Cookie: session=abc123; Path=/; HttpOnly\r\n",
			expected: "HTTP/1.1 200 OK\r\nSet-Cookie: ***\r\n",
		},
		{
			name:     "Session pair in free text",
			input:    "restored session=abc123 from keychain",
			expected: "restored session=*** from keychain",
		},
		{
			name:     "Password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "Token",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "Nothing to mask",
			input:    `{"status":"ok"}`,
			expected: `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
