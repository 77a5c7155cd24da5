package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      Info
	}{
		{
			name:      "edge on windows",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0",
			want:      Info{Browser: "Microsoft Edge", OS: "Windows", Device: Desktop},
		},
		{
			name:      "chrome on mac",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			want:      Info{Browser: "Google Chrome", OS: "MacOS", Device: Desktop},
		},
		{
			name:      "firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
			want:      Info{Browser: "Firefox", OS: Unknown, Device: Desktop},
		},
		{
			name:      "safari on iphone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			want:      Info{Browser: "Safari", OS: "MacOS", Device: Mobile},
		},
		{
			name:      "chrome on android",
			userAgent: "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36",
			want:      Info{Browser: "Google Chrome", OS: "Android", Device: Mobile},
		},
		{
			name:      "empty string",
			userAgent: "",
			want:      Info{Browser: Unknown, OS: Unknown, Device: Desktop},
		},
		{
			name:      "unrecognised agent",
			userAgent: "curl/8.4.0",
			want:      Info{Browser: Unknown, OS: Unknown, Device: Desktop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}

// Edge ships both "Edg" and "Chrome" tokens; the Edg rule must win or
// every Edge login would be forced through the OTP step.
func TestClassify_EdgePrecedence(t *testing.T) {
	got := Classify("Chrome/120.0 Safari/537.36 Edg/120.0")
	assert.Equal(t, "Microsoft Edge", got.Browser)
}
