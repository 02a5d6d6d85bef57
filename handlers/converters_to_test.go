package handlers

import (
	"testing"

	"serverbrowser/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServersResponse(t *testing.T) {
	tests := []struct {
		name    string
		servers []domain.ServerInfo
		wantLen int
	}{
		{name: "nil", servers: nil, wantLen: 0},
		{name: "empty", servers: []domain.ServerInfo{}, wantLen: 0},
		{name: "one", servers: []domain.ServerInfo{arena}, wantLen: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toServersResponse(tt.servers)
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}

	got := toServersResponse([]domain.ServerInfo{arena})
	assert.Equal(t, ServerInfo{Name: "Arena", Ip: "10.0.0.5", Port: 27015, Players: 3, Ping: 40, DedicatedServer: true}, got[0])
}
