package main

import (
	"bytes"
	"testing"

	"github.com/govalues/exact"
	"github.com/govalues/exact/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"allocate", []string{"allocate", "-target", "100/1", "50%", "30%", "20%"}, "50/1\n30/1\n20/1\n"},
		{"allocate thirds", []string{"allocate", "1%", "1%", "1%"}, "1/3\n1/3\n1/3\n"},
		{"allocate target denominator", []string{"allocate", "-target", "4/8", "50%", "50%"}, "2/8\n2/8\n"},
		{"allocate simplified", []string{"allocate", "-target", "4/8", "-simplify", "50", "50"}, "1/4\n1/4\n"},
		{"split", []string{"split", "100.00", "3"}, "33.34\n33.33\n33.33\n"},
		{"split negative", []string{"split", "--", "-1.00", "3"}, "-0.34\n-0.33\n-0.33\n"},
		{"split precision", []string{"split", "-precision", "0", "10", "4"}, "3\n2\n3\n2\n"},
		{"split zero count", []string{"split", "10", "0"}, ""},
		{"partition", []string{"partition", "7", "1/2", "1/3"}, "4\n2\n"},
		{"partition zero weight", []string{"partition", "9", "0", "1/2", "1/2"}, "0\n5\n4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tt.args, &buf, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRun_Error(t *testing.T) {
	tests := map[string]struct {
		args []string
		cls  interface{ Has(error) bool }
	}{
		"no command":       {nil, &ErrUsage},
		"unknown command":  {[]string{"divide", "1"}, &ErrUsage},
		"unknown flag":     {[]string{"allocate", "-scale", "2", "50%"}, &ErrUsage},
		"no percentages":   {[]string{"allocate", "-target", "1/2"}, &ErrUsage},
		"split arguments":  {[]string{"split", "1.00"}, &ErrUsage},
		"split count":      {[]string{"split", "1.00", "-3"}, &ErrUsage},
		"partition value":  {[]string{"partition", "-7", "1/2"}, &ErrUsage},
		"partition weight": {[]string{"partition", "7"}, &ErrUsage},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tt.args, &buf, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.True(t, tt.cls.Has(err), "got %v", err)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRun_LibraryError(t *testing.T) {
	tests := map[string][]string{
		"bad target":       {"allocate", "-target", "1/0", "50%"},
		"bad percentage":   {"allocate", "fifty"},
		"zero percentage":  {"allocate", "0%", "100%"},
		"negative target":  {"allocate", "-target", "-1/2", "100%"},
		"bad amount":       {"split", "ten", "3"},
		"bad precision":    {"split", "-precision", "19", "10", "3"},
		"bad fraction":     {"partition", "7", "1/x"},
		"negative weight":  {"partition", "7", "-1/2"},
		"weight overflows": {"partition", "7", "1/18446744073709551615", "1/18446744073709551614"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(args, &buf, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.False(t, ErrUsage.Has(err), "got %v", err)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer

	err := run([]string{"partition", "7", "1/2", "1/3"}, &buf, zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("partitioned").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "partition", fields["command"])
	assert.Equal(t, uint64(7), fields["value"])
	assert.Equal(t, uint64(6), fields["sum"])
	assert.Equal(t, uint64(5), fields["total"])
}

func TestRun_LogsAllocate(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var buf bytes.Buffer

	err := run([]string{"allocate", "-target", "3/4", "25%", "75%"}, &buf, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "3/16\n9/16\n", buf.String())

	assert.Equal(t, 0, logs.FilterMessage("allocating").Len())
	entries := logs.FilterMessage("allocated").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, exact.MustNewFraction(3, 4).String(), fields["target"])
	assert.Equal(t, int64(2), fields["shares"])
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want config
	}{
		{"defaults", nil, config{Environment: logging.EnvironmentProduction}},
		{"development", map[string]string{envEnvironment: " Development "}, config{Environment: logging.EnvironmentDevelopment}},
		{"level", map[string]string{envEnvironment: "local", envLogLevel: "warn"}, config{Environment: logging.EnvironmentLocal, LogLevel: "warn"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loadConfig(func(key string) string { return tt.env[key] })
			assert.Equal(t, tt.want, got)

			logger, err := logging.New(got.logging())
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cfg := loadConfig(func(key string) string {
		if key == envEnvironment {
			return "banana"
		}
		return ""
	})
	_, err := logging.New(cfg.logging())
	assert.Error(t, err)
}
