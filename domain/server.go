// Package domain holds the values the registry stores and hands out.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"serverbrowser/service"

	"github.com/cespare/xxhash/v2"
)

// ServerInfo represents one advertised game server.
// Fields match API: name, ip, port, players, ping, dedicatedServer.
//
// Two ServerInfo values describe the same server iff their IP and Port match;
// Name, Players, Ping and DedicatedServer are mutable attributes of that identity.
type ServerInfo struct {
	Name            string `json:"name"`
	IP              string `json:"ip"` // required, never blank
	Port            int    `json:"port"`
	Players         int    `json:"players"` // current occupancy
	Ping            int    `json:"ping"`    // latency hint
	DedicatedServer bool   `json:"dedicatedServer"`
}

// ServerID is the identity of a ServerInfo.
type ServerID struct {
	IP   string
	Port int
}

// NewServerInfo builds a ServerInfo and validates it.
// Returns service.BadParameterError when ip is blank.
func NewServerInfo(name, ip string, port, players, ping int, dedicated bool) (ServerInfo, error) {
	s := ServerInfo{
		Name:            name,
		IP:              ip,
		Port:            port,
		Players:         players,
		Ping:            ping,
		DedicatedServer: dedicated,
	}
	if err := s.Validate(); err != nil {
		return ServerInfo{}, err
	}
	return s, nil
}

// Validate checks the construction invariant: ip must not be blank.
func (s ServerInfo) Validate() error {
	if strings.TrimSpace(s.IP) == "" {
		return service.NewBadParameterError("ip cannot be blank", nil)
	}
	return nil
}

// ID returns the identity of the server.
func (s ServerInfo) ID() ServerID {
	return ServerID{IP: s.IP, Port: s.Port}
}

// Equal reports whether s and other are the same server. Only IP and Port are compared.
func (s ServerInfo) Equal(other ServerInfo) bool {
	return s.ID() == other.ID()
}

// Hash is consistent with Equal: it only covers IP and Port.
func (s ServerInfo) Hash() uint64 {
	return s.ID().Hash()
}

// UnmarshalJSON decodes a ServerInfo and rejects blank ip, so a decoded record
// satisfies the same invariant as one built with NewServerInfo.
func (s *ServerInfo) UnmarshalJSON(data []byte) error {
	type plain ServerInfo
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	decoded := ServerInfo(p)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// String returns "ip:port".
func (id ServerID) String() string {
	return id.IP + ":" + strconv.Itoa(id.Port)
}

// Hash returns xxhash of "ip:port".
func (id ServerID) Hash() uint64 {
	return xxhash.Sum64String(id.String())
}

// ServerCreationResult is the outcome of a heartbeat: the stored record and
// whether no live entry existed for its identity beforehand.
type ServerCreationResult struct {
	Server  ServerInfo
	Created bool
}
