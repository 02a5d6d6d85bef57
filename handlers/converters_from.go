package handlers

import (
	"serverbrowser/domain"
	"serverbrowser/service"
)

// fromRegisterServerRequest converts RegisterServerRequest to domain.ServerInfo.
// Optional fields default to their zero value.
// Returns service.BadParameterError on validation failure.
func fromRegisterServerRequest(req RegisterServerRequest) (domain.ServerInfo, error) {
	if req.Port < 0 || req.Port > 65535 {
		return domain.ServerInfo{}, service.NewBadParameterError("port is out of range", nil)
	}

	return domain.NewServerInfo(
		service.Value(req.Name),
		req.Ip,
		req.Port,
		service.Value(req.Players),
		service.Value(req.Ping),
		service.Value(req.DedicatedServer),
	)
}

// fromServerPath converts DELETE /servers/{ip}/{port} parameters to domain.ServerID.
func fromServerPath(ip string, port int) (domain.ServerID, error) {
	// Validation reuses the record invariant so both paths reject the same identities.
	s := domain.ServerInfo{IP: ip, Port: port}
	if err := s.Validate(); err != nil {
		return domain.ServerID{}, err
	}
	return s.ID(), nil
}
