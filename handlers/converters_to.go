package handlers

import (
	"serverbrowser/domain"
)

// toServerInfo converts a domain record to its API shape.
func toServerInfo(s domain.ServerInfo) ServerInfo {
	return ServerInfo{
		Name:            s.Name,
		Ip:              s.IP,
		Port:            s.Port,
		Players:         s.Players,
		Ping:            s.Ping,
		DedicatedServer: s.DedicatedServer,
	}
}

// toServersResponse converts domain records to API response. Never nil, so an empty list encodes as [].
func toServersResponse(servers []domain.ServerInfo) []ServerInfo {
	out := make([]ServerInfo, 0, len(servers))
	for _, s := range servers {
		out = append(out, toServerInfo(s))
	}
	return out
}
