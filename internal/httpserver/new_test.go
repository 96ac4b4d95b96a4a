package httpserver

import (
	"database/sql"
	"testing"

	"polaris-api/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		logger  log.Logger
		cfg     Config
		wantErr string
	}{
		{name: "no logger", cfg: Config{Port: 8080}, wantErr: "logger is required"},
		{name: "no port", logger: log.NewNop(), wantErr: "port is required"},
		{name: "no postgres", logger: log.NewNop(), cfg: Config{Port: 8080}, wantErr: "PostgreSQL connection is required"},
		{name: "no redis", logger: log.NewNop(), cfg: Config{Port: 8080, PostgresDB: &sql.DB{}}, wantErr: "Redis client is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.logger, tc.cfg)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
