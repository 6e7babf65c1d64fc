package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		wantLevel     zapcore.Level
		wantCaller    bool
		wantCallerKey string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantCaller: false, wantCallerKey: zapcore.OmitKey},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantCaller: true, wantCallerKey: "caller"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantCaller: false, wantCallerKey: zapcore.OmitKey},
		{name: "fallback", env: "staging", wantLevel: zap.InfoLevel, wantCaller: false, wantCallerKey: zapcore.OmitKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, withCaller := buildConfig(tc.env)
			if cfg.Level.Level() != tc.wantLevel {
				t.Fatalf("level mismatch: got %v want %v", cfg.Level.Level(), tc.wantLevel)
			}
			if withCaller != tc.wantCaller {
				t.Fatalf("caller mismatch: got %v want %v", withCaller, tc.wantCaller)
			}
			if cfg.EncoderConfig.CallerKey != tc.wantCallerKey {
				t.Fatalf("caller key mismatch: got %q want %q", cfg.EncoderConfig.CallerKey, tc.wantCallerKey)
			}
		})
	}
}

func TestIsIgnorableSyncError(t *testing.T) {
	if isIgnorableSyncError(nil) {
		t.Fatal("nil must not be ignorable")
	}
}
