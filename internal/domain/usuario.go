package domain

// MsgEmailDuplicado é devolvido quando o e-mail já está em uso, seja na checagem
// do serviço ou pela constraint UNIQUE.
const MsgEmailDuplicado = "E-mail já cadastrado."

// Usuario representa a conta usada para autenticação.
type Usuario struct {
	ID        int    `json:"id" example:"1"`
	Nome      string `json:"nome" example:"Lucas"`
	Email     string `json:"email" example:"lucas@gmail.com"`
	SenhaHash string `json:"-"` // Oculta o hash da senha no JSON de resposta
}

// UsuarioRegistration representa o payload de entrada para o registro.
type UsuarioRegistration struct {
	Nome  string
	Email string
	Senha string
}

// Credentials representa o payload de entrada para o login.
type Credentials struct {
	Email string
	Senha string
}
