package domain

// DateLayout é o formato canônico (YYYY-MM-DD) das datas expostas pela API.
const DateLayout = "2006-01-02"

// Agente representa um agente policial.
type Agente struct {
	ID                 int    `json:"id" example:"1"`
	Nome               string `json:"nome" example:"Rommel Carneiro"`
	DataDeIncorporacao string `json:"dataDeIncorporacao" example:"1992-10-04"` // Sempre YYYY-MM-DD
	Cargo              string `json:"cargo" example:"Delegado"`
}

// AgentePatch carrega uma atualização parcial; campos nil não são alterados.
type AgentePatch struct {
	Nome               *string
	DataDeIncorporacao *string
	Cargo              *string
}

// IsEmpty indica que nenhum campo foi informado.
func (p AgentePatch) IsEmpty() bool {
	return p.Nome == nil && p.DataDeIncorporacao == nil && p.Cargo == nil
}

// AgenteSort é a ordenação aceita na listagem de agentes.
type AgenteSort string

const (
	SortNone     AgenteSort = ""
	SortDataAsc  AgenteSort = "dataDeIncorporacao"
	SortDataDesc AgenteSort = "-dataDeIncorporacao"
)

// ParseAgenteSort valida o parâmetro de ordenação. Apenas os dois tokens conhecidos
// (ou vazio) são aceitos.
func ParseAgenteSort(raw string) (AgenteSort, bool) {
	switch AgenteSort(raw) {
	case SortNone, SortDataAsc, SortDataDesc:
		return AgenteSort(raw), true
	default:
		return SortNone, false
	}
}

// AgenteFilter define os parâmetros de listagem de agentes.
type AgenteFilter struct {
	Cargo string // Substring, sem distinção de maiúsculas
	Sort  AgenteSort
}
