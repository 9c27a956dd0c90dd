package validation

import (
	"io"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
)

var casoMessages = messageTable{
	"id.readonly":        "Id inválido, o id é criado automaticamente e não é alterável",
	"titulo.required":    "titulo é obrigatório (string)",
	"titulo.min":         "titulo não pode ser vazio",
	"titulo.type":        "titulo é obrigatório (string)",
	"descricao.required": "descricao é obrigatória (string)",
	"descricao.min":      "descricao não pode ser vazia",
	"descricao.type":     "descricao é obrigatória (string)",
	"status.required":    "status é obrigatório (aberto ou solucionado)",
	"status.oneof":       "status é obrigatório (aberto ou solucionado)",
	"status.type":        "status é obrigatório (aberto ou solucionado)",
	"agente_id.required": "agente_id é obrigatório (Id de um agente existente - integer)",
	"agente_id.gt":       "agente_id deve ser um número inteiro positivo",
	"agente_id.max":      "agente_id fora do intervalo permitido",
	"agente_id.type":     "agente_id é obrigatório (Id de um agente existente - integer)",
}

// CasoInput é o payload de criação/substituição de um caso. ID existe apenas para
// ser rejeitado: ids são gerados pelo servidor.
type CasoInput struct {
	ID        interface{} `json:"id" validate:"-"`
	Titulo    *string     `json:"titulo" validate:"required,min=1"`
	Descricao *string     `json:"descricao" validate:"required,min=1"`
	Status    *string     `json:"status" validate:"required,oneof=aberto solucionado"`
	AgenteID  *int        `json:"agente_id" validate:"required,gt=0,max=2147483647"`
}

// CasoPatchInput é o payload de atualização parcial de um caso.
type CasoPatchInput struct {
	ID        interface{} `json:"id" validate:"-"`
	Titulo    *string     `json:"titulo" validate:"omitnil,min=1"`
	Descricao *string     `json:"descricao" validate:"omitnil,min=1"`
	Status    *string     `json:"status" validate:"omitnil,oneof=aberto solucionado"`
	AgenteID  *int        `json:"agente_id" validate:"omitnil,gt=0,max=2147483647"`
}

// DecodeCaso lê e valida um caso completo.
func DecodeCaso(r io.Reader) (domain.Caso, error) {
	var in CasoInput
	if err := decodeAndCheck(r, &in, casoMessages); err != nil {
		return domain.Caso{}, err
	}

	return domain.Caso{
		Titulo:    *in.Titulo,
		Descricao: *in.Descricao,
		Status:    domain.CasoStatus(*in.Status),
		AgenteID:  *in.AgenteID,
	}, nil
}

// DecodeCasoPatch lê e valida uma atualização parcial de caso.
func DecodeCasoPatch(r io.Reader) (domain.CasoPatch, error) {
	var in CasoPatchInput
	if err := decodeAndCheck(r, &in, casoMessages); err != nil {
		return domain.CasoPatch{}, err
	}

	patch := domain.CasoPatch{
		Titulo:    in.Titulo,
		Descricao: in.Descricao,
		AgenteID:  in.AgenteID,
	}
	if in.Status != nil {
		status := domain.CasoStatus(*in.Status)
		patch.Status = &status
	}
	if patch.IsEmpty() {
		return domain.CasoPatch{}, apperror.NewValidationError(msgEmptyPatch)
	}
	return patch, nil
}
