package domain

// CasoStatus é o estado de um caso.
type CasoStatus string

const (
	StatusAberto      CasoStatus = "aberto"
	StatusSolucionado CasoStatus = "solucionado"
)

// Valid informa se o status pertence ao enum.
func (s CasoStatus) Valid() bool {
	return s == StatusAberto || s == StatusSolucionado
}

// Caso representa um caso policial, vinculado a exatamente um Agente.
type Caso struct {
	ID        int        `json:"id" example:"1"`
	Titulo    string     `json:"titulo" example:"Homicidio"`
	Descricao string     `json:"descricao" example:"Disparos foram reportados às 22:33 na região do bairro União."`
	Status    CasoStatus `json:"status" example:"aberto"`
	AgenteID  int        `json:"agente_id" example:"1"`
}

// CasoPatch carrega uma atualização parcial; campos nil não são alterados.
type CasoPatch struct {
	Titulo    *string
	Descricao *string
	Status    *CasoStatus
	AgenteID  *int
}

// IsEmpty indica que nenhum campo foi informado.
func (p CasoPatch) IsEmpty() bool {
	return p.Titulo == nil && p.Descricao == nil && p.Status == nil && p.AgenteID == nil
}

// CasoFilter define os filtros de igualdade da listagem; valores zero são ignorados.
// Os dois filtros são combinados com AND.
type CasoFilter struct {
	Status   CasoStatus
	AgenteID int
}
