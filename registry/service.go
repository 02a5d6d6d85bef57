// Package registry implements the create-or-refresh semantics of the server browser.
package registry

import (
	"context"
	"fmt"

	"serverbrowser/domain"
	"serverbrowser/interfaces"
	"serverbrowser/metrics"
	"serverbrowser/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Service implements interfaces.ServerRegistry on top of a ServerRepository.
type Service struct {
	repository interfaces.ServerRepository
	metrics    *metrics.Metrics
	logger     log.Logger
}

// NewService creates a Service. Panics on nil repository. m may be nil.
func NewService(repository interfaces.ServerRepository, m *metrics.Metrics, logger log.Logger) *Service {
	if repository == nil {
		panic("registry.service.go: repository is required")
	}
	return &Service{
		repository: repository,
		metrics:    m,
		logger:     log.WithPrefix(logger, "component", "RegistryService"),
	}
}

func (s *Service) GetAllServers(ctx context.Context) ([]domain.ServerInfo, error) {
	servers, err := s.repository.FindAll(ctx)
	s.metrics.List(len(servers), err)
	if err != nil {
		return nil, err
	}
	return servers, nil
}

// CreateOrRefresh removes any live entry for the identity, then saves the record with a fresh TTL.
// Created is true iff nothing live was removed. Two concurrent heartbeats for the same
// identity may both see Created=true; the stored live set is correct either way.
func (s *Service) CreateOrRefresh(ctx context.Context, server domain.ServerInfo) (domain.ServerCreationResult, error) {
	if err := server.Validate(); err != nil {
		s.metrics.Heartbeat(metrics.OutcomeError)
		return domain.ServerCreationResult{}, err
	}

	existed, err := s.repository.Remove(ctx, server.ID())
	if err != nil {
		s.metrics.Heartbeat(metrics.OutcomeError)
		return domain.ServerCreationResult{}, fmt.Errorf("createOrRefresh failed to remove previous entry, err: %w", err)
	}

	if err := s.repository.Save(ctx, server); err != nil {
		s.metrics.Heartbeat(metrics.OutcomeError)
		return domain.ServerCreationResult{}, fmt.Errorf("createOrRefresh failed to save server, err: %w", err)
	}

	if existed {
		s.metrics.Heartbeat(metrics.OutcomeRefreshed)
		level.Debug(s.logger).Log("msg", "Server refreshed", "server", server.ID())
	} else {
		s.metrics.Heartbeat(metrics.OutcomeCreated)
		level.Info(s.logger).Log("msg", "Server registered", "server", server.ID(), "name", server.Name)
	}

	return domain.ServerCreationResult{Server: server, Created: !existed}, nil
}

// Unregister removes the server before its TTL runs out, e.g. on graceful shutdown.
func (s *Service) Unregister(ctx context.Context, id domain.ServerID) error {
	removed, err := s.repository.Remove(ctx, id)
	if err != nil {
		s.metrics.Unregister(metrics.OutcomeError)
		return fmt.Errorf("unregister failed to remove server, err: %w", err)
	}
	if !removed {
		s.metrics.Unregister(metrics.OutcomeNotFound)
		return service.NewEntityNotFoundError("server not found", fmt.Errorf("no live entry for %s", id))
	}

	s.metrics.Unregister(metrics.OutcomeRemoved)
	level.Info(s.logger).Log("msg", "Server unregistered", "server", id)
	return nil
}
