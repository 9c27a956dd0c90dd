package casoservice

import (
	"context"
	"fmt"
	"strings"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

// MsgPesquisaVazia é devolvida quando /casos/search chega sem termo.
const MsgPesquisaVazia = "Parâmetro de pesquisa 'q' não encontrado"

// CasoRepository define o contrato que o Serviço de Casos espera da camada de Persistência.
type CasoRepository interface {
	GetAllCasos(ctx context.Context, filter domain.CasoFilter) ([]domain.Caso, error)
	SearchCasos(ctx context.Context, q string) ([]domain.Caso, error)
	GetCasoByID(ctx context.Context, id int) (*domain.Caso, error)
	CreateCaso(ctx context.Context, caso domain.Caso) (domain.Caso, error)
	UpdateCaso(ctx context.Context, id int, caso domain.Caso) (*domain.Caso, error)
	PatchCaso(ctx context.Context, id int, patch domain.CasoPatch) (*domain.Caso, error)
	DeleteCaso(ctx context.Context, id int) (bool, error)
}

// AgenteFinder resolve o agente referenciado por um caso.
type AgenteFinder interface {
	GetAgenteByID(ctx context.Context, id int) (*domain.Agente, error)
}

// Service implementa as regras de negócio de casos, incluindo a integridade
// da referência agente_id.
type Service struct {
	repo    CasoRepository
	agentes AgenteFinder
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Casos.
func NewService(repo CasoRepository, agentes AgenteFinder, logger logger.Logger) *Service {
	return &Service{repo: repo, agentes: agentes, logger: logger}
}

func casoNotFound(id int) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Não foi possível encontrar o caso de Id: %d.", id))
}

func casoNotUpdated(id int) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Não foi possível atualizar o caso de id: %d.", id))
}

// ensureAgente falha com 404 quando o agente referenciado não existe.
func (s *Service) ensureAgente(ctx context.Context, agenteID int) error {
	agente, err := s.agentes.GetAgenteByID(ctx, agenteID)
	if err != nil {
		s.logger.Error("Falha ao verificar agente referenciado.", err)
		return err
	}
	if agente == nil {
		s.logger.Info("Agente referenciado não existe.", map[string]interface{}{"agente_id": agenteID})
		return apperror.NewNotFoundError(fmt.Sprintf("Não foi possível encontrar o agente de id: %d.", agenteID))
	}
	return nil
}

// ListCasos retorna os casos que satisfazem todos os filtros informados.
func (s *Service) ListCasos(ctx context.Context, filter domain.CasoFilter) ([]domain.Caso, error) {
	s.logger.Debug("Iniciando listagem de casos no serviço.", map[string]interface{}{"status": string(filter.Status), "agente_id": filter.AgenteID})

	casos, err := s.repo.GetAllCasos(ctx, filter)
	if err != nil {
		s.logger.Error("Falha ao listar casos no repositório.", err)
		return nil, err
	}
	return casos, nil
}

// SearchCasos pesquisa o termo em titulo e descricao. Nenhum resultado é 404.
func (s *Service) SearchCasos(ctx context.Context, q string) ([]domain.Caso, error) {
	term := strings.TrimSpace(q)
	s.logger.Debug("Iniciando pesquisa de casos no serviço.", map[string]interface{}{"q": term})

	if term == "" {
		return nil, apperror.NewValidationError(MsgPesquisaVazia)
	}

	casos, err := s.repo.SearchCasos(ctx, term)
	if err != nil {
		s.logger.Error("Falha ao pesquisar casos no repositório.", err)
		return nil, err
	}
	if len(casos) == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Não foi possível encontrar casos relacionados à pesquisa: %s.", term))
	}
	return casos, nil
}

// GetCaso busca um caso pelo ID.
func (s *Service) GetCaso(ctx context.Context, id int) (domain.Caso, error) {
	s.logger.Debug("Iniciando busca de caso por ID no serviço.", map[string]interface{}{"id": id})

	caso, err := s.repo.GetCasoByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar caso no repositório.", err)
		return domain.Caso{}, err
	}
	if caso == nil {
		return domain.Caso{}, casoNotFound(id)
	}
	return *caso, nil
}

// GetAgenteOfCaso resolve o caso e depois o agente responsável, com mensagens
// distintas para cada ausência.
func (s *Service) GetAgenteOfCaso(ctx context.Context, id int) (domain.Agente, error) {
	caso, err := s.GetCaso(ctx, id)
	if err != nil {
		return domain.Agente{}, err
	}

	agente, err := s.agentes.GetAgenteByID(ctx, caso.AgenteID)
	if err != nil {
		s.logger.Error("Falha ao buscar agente do caso.", err)
		return domain.Agente{}, err
	}
	if agente == nil {
		return domain.Agente{}, apperror.NewNotFoundError(
			fmt.Sprintf("Não foi possível encontrar casos correspondentes ao agente de Id: %d.", caso.AgenteID),
		)
	}
	return *agente, nil
}

// CreateCaso persiste um caso depois de confirmar que o agente existe.
func (s *Service) CreateCaso(ctx context.Context, caso domain.Caso) (domain.Caso, error) {
	s.logger.Debug("Iniciando criação de caso no serviço.", map[string]interface{}{"titulo": caso.Titulo, "agente_id": caso.AgenteID})

	if err := s.ensureAgente(ctx, caso.AgenteID); err != nil {
		return domain.Caso{}, err
	}

	created, err := s.repo.CreateCaso(ctx, caso)
	if err != nil {
		s.logger.Error("Falha ao criar caso no repositório.", err)
		return domain.Caso{}, err
	}

	s.logger.Info("Caso criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateCaso substitui um caso; o agente informado precisa existir.
func (s *Service) UpdateCaso(ctx context.Context, id int, caso domain.Caso) (domain.Caso, error) {
	s.logger.Debug("Iniciando atualização de caso no serviço.", map[string]interface{}{"id": id})

	if err := s.ensureAgente(ctx, caso.AgenteID); err != nil {
		return domain.Caso{}, err
	}

	updated, err := s.repo.UpdateCaso(ctx, id, caso)
	if err != nil {
		s.logger.Error("Falha ao atualizar caso no repositório.", err)
		return domain.Caso{}, err
	}
	if updated == nil {
		return domain.Caso{}, casoNotUpdated(id)
	}
	return *updated, nil
}

// PatchCaso atualiza os campos presentes; agente_id, quando informado, precisa existir.
func (s *Service) PatchCaso(ctx context.Context, id int, patch domain.CasoPatch) (domain.Caso, error) {
	s.logger.Debug("Iniciando atualização parcial de caso no serviço.", map[string]interface{}{"id": id})

	if patch.IsEmpty() {
		return domain.Caso{}, apperror.NewValidationError("Nenhum campo informado para atualização.")
	}

	if patch.AgenteID != nil {
		if err := s.ensureAgente(ctx, *patch.AgenteID); err != nil {
			return domain.Caso{}, err
		}
	}

	updated, err := s.repo.PatchCaso(ctx, id, patch)
	if err != nil {
		s.logger.Error("Falha ao atualizar parcialmente caso no repositório.", err)
		return domain.Caso{}, err
	}
	if updated == nil {
		return domain.Caso{}, casoNotUpdated(id)
	}
	return *updated, nil
}

// DeleteCaso remove um caso.
func (s *Service) DeleteCaso(ctx context.Context, id int) error {
	s.logger.Debug("Iniciando remoção de caso no serviço.", map[string]interface{}{"id": id})

	deleted, err := s.repo.DeleteCaso(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao remover caso no repositório.", err)
		return err
	}
	if !deleted {
		return casoNotFound(id)
	}

	s.logger.Info("Caso removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
