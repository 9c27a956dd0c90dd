package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Status  int      `json:"status" example:"400"`
	Message string   `json:"message" example:"nome não pode ser vazio, cargo é obrigatório (string)"`
	Errors  []string `json:"errors"`
}
