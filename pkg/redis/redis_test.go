package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  RedisConfig
		want error
	}{
		{name: "missing host", cfg: RedisConfig{Port: 6379}, want: ErrHostRequired},
		{name: "zero port", cfg: RedisConfig{Host: "localhost"}, want: ErrInvalidPort},
		{name: "port out of range", cfg: RedisConfig{Host: "localhost", Port: 70000}, want: ErrInvalidPort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
