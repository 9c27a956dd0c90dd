package validation

import (
	"io"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
)

var agenteMessages = messageTable{
	"nome.required":                "nome é obrigatório (string)",
	"nome.min":                     "nome não pode ser vazio",
	"nome.type":                    "nome é obrigatório (string)",
	"dataDeIncorporacao.required":  "dataDeIncorporacao é obrigatória (YYYY-MM-DD ou YYYY/MM/DD)",
	"dataDeIncorporacao.min":       "dataDeIncorporacao não pode ser vazia",
	"dataDeIncorporacao.isodate":   "dataDeIncorporacao deve ser uma data válida no formato YYYY-MM-DD",
	"dataDeIncorporacao.notfuture": "dataDeIncorporacao não pode ser uma data futura",
	"dataDeIncorporacao.type":      "dataDeIncorporacao é obrigatória (YYYY-MM-DD ou YYYY/MM/DD)",
	"cargo.required":               "cargo é obrigatório (string)",
	"cargo.min":                    "cargo não pode ser vazio",
	"cargo.type":                   "cargo é obrigatório (string)",
}

// AgenteInput é o payload de criação/substituição de um agente.
type AgenteInput struct {
	Nome               *string `json:"nome" validate:"required,min=1"`
	DataDeIncorporacao *string `json:"dataDeIncorporacao" validate:"required,min=1,isodate,notfuture"`
	Cargo              *string `json:"cargo" validate:"required,min=1"`
}

// AgentePatchInput é o payload de atualização parcial: todos os campos são opcionais,
// mas os presentes seguem as mesmas regras.
type AgentePatchInput struct {
	Nome               *string `json:"nome" validate:"omitnil,min=1"`
	DataDeIncorporacao *string `json:"dataDeIncorporacao" validate:"omitnil,min=1,isodate,notfuture"`
	Cargo              *string `json:"cargo" validate:"omitnil,min=1"`
}

// DecodeAgente lê e valida um agente completo.
func DecodeAgente(r io.Reader) (domain.Agente, error) {
	var in AgenteInput
	tf, err := decodeStrict(r, &in, agenteMessages)
	if err != nil {
		return domain.Agente{}, err
	}
	normalizeDate(in.DataDeIncorporacao)

	if err := check(&in, agenteMessages, tf); err != nil {
		return domain.Agente{}, err
	}

	return domain.Agente{
		Nome:               *in.Nome,
		DataDeIncorporacao: *in.DataDeIncorporacao,
		Cargo:              *in.Cargo,
	}, nil
}

// DecodeAgentePatch lê e valida uma atualização parcial de agente.
func DecodeAgentePatch(r io.Reader) (domain.AgentePatch, error) {
	var in AgentePatchInput
	tf, err := decodeStrict(r, &in, agenteMessages)
	if err != nil {
		return domain.AgentePatch{}, err
	}
	normalizeDate(in.DataDeIncorporacao)

	if err := check(&in, agenteMessages, tf); err != nil {
		return domain.AgentePatch{}, err
	}

	patch := domain.AgentePatch{
		Nome:               in.Nome,
		DataDeIncorporacao: in.DataDeIncorporacao,
		Cargo:              in.Cargo,
	}
	if patch.IsEmpty() {
		return domain.AgentePatch{}, apperror.NewValidationError(msgEmptyPatch)
	}
	return patch, nil
}
