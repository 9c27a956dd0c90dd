package agenteservice

import (
	"context"
	"fmt"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

// MsgAgenteNaoEncontrado é usado nas operações de escrita sobre um agente ausente.
const MsgAgenteNaoEncontrado = "Agente não encontrado."

// AgenteRepository define o contrato que o Serviço de Agentes espera da camada de Persistência.
type AgenteRepository interface {
	GetAllAgentes(ctx context.Context, filter domain.AgenteFilter) ([]domain.Agente, error)
	GetAgenteByID(ctx context.Context, id int) (*domain.Agente, error)
	CreateAgente(ctx context.Context, agente domain.Agente) (domain.Agente, error)
	UpdateAgente(ctx context.Context, id int, agente domain.Agente) (*domain.Agente, error)
	PatchAgente(ctx context.Context, id int, patch domain.AgentePatch) (*domain.Agente, error)
	DeleteAgente(ctx context.Context, id int) (bool, error)
}

// Service implementa as regras de negócio de agentes. A entrada já chega validada.
type Service struct {
	repo   AgenteRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Agentes.
func NewService(repo AgenteRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListAgentes retorna os agentes segundo filtro e ordenação.
func (s *Service) ListAgentes(ctx context.Context, filter domain.AgenteFilter) ([]domain.Agente, error) {
	s.logger.Debug("Iniciando listagem de agentes no serviço.", map[string]interface{}{"cargo": filter.Cargo, "sort": string(filter.Sort)})

	agentes, err := s.repo.GetAllAgentes(ctx, filter)
	if err != nil {
		s.logger.Error("Falha ao listar agentes no repositório.", err)
		return nil, err
	}
	return agentes, nil
}

// GetAgente busca um agente pelo ID.
func (s *Service) GetAgente(ctx context.Context, id int) (domain.Agente, error) {
	s.logger.Debug("Iniciando busca de agente por ID no serviço.", map[string]interface{}{"id": id})

	agente, err := s.repo.GetAgenteByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar agente no repositório.", err)
		return domain.Agente{}, err
	}
	if agente == nil {
		return domain.Agente{}, apperror.NewNotFoundError(fmt.Sprintf("Não foi possível encontrar o agente de Id: %d", id))
	}
	return *agente, nil
}

// CreateAgente persiste um novo agente.
func (s *Service) CreateAgente(ctx context.Context, agente domain.Agente) (domain.Agente, error) {
	s.logger.Debug("Iniciando criação de agente no serviço.", map[string]interface{}{"nome": agente.Nome})

	created, err := s.repo.CreateAgente(ctx, agente)
	if err != nil {
		s.logger.Error("Falha ao criar agente no repositório.", err)
		return domain.Agente{}, err
	}

	s.logger.Info("Agente criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateAgente substitui todos os campos de um agente existente.
func (s *Service) UpdateAgente(ctx context.Context, id int, agente domain.Agente) (domain.Agente, error) {
	s.logger.Debug("Iniciando atualização de agente no serviço.", map[string]interface{}{"id": id})

	updated, err := s.repo.UpdateAgente(ctx, id, agente)
	if err != nil {
		s.logger.Error("Falha ao atualizar agente no repositório.", err)
		return domain.Agente{}, err
	}
	if updated == nil {
		return domain.Agente{}, apperror.NewNotFoundError(MsgAgenteNaoEncontrado)
	}
	return *updated, nil
}

// PatchAgente atualiza somente os campos presentes no patch.
func (s *Service) PatchAgente(ctx context.Context, id int, patch domain.AgentePatch) (domain.Agente, error) {
	s.logger.Debug("Iniciando atualização parcial de agente no serviço.", map[string]interface{}{"id": id})

	if patch.IsEmpty() {
		return domain.Agente{}, apperror.NewValidationError("Nenhum campo informado para atualização.")
	}

	updated, err := s.repo.PatchAgente(ctx, id, patch)
	if err != nil {
		s.logger.Error("Falha ao atualizar parcialmente agente no repositório.", err)
		return domain.Agente{}, err
	}
	if updated == nil {
		return domain.Agente{}, apperror.NewNotFoundError(MsgAgenteNaoEncontrado)
	}
	return *updated, nil
}

// DeleteAgente remove um agente e, em cascata, seus casos.
func (s *Service) DeleteAgente(ctx context.Context, id int) error {
	s.logger.Debug("Iniciando remoção de agente no serviço.", map[string]interface{}{"id": id})

	deleted, err := s.repo.DeleteAgente(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao remover agente no repositório.", err)
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(MsgAgenteNaoEncontrado)
	}

	s.logger.Info("Agente removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
