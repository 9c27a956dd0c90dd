package validation

import (
	"io"

	"delegacia/internal/domain"
)

var usuarioMessages = messageTable{
	"nome.required":   "Nome é obrigatório.",
	"nome.type":       "Nome é obrigatório.",
	"email.required":  "Email é obrigatório.",
	"email.email":     "Email inválido.",
	"email.type":      "Email inválido.",
	"senha.required":  "Senha é obrigatória.",
	"senha.type":      "Senha é obrigatória.",
	"senha.min":       "Senha deve ter pelo menos 8 caracteres.",
	"senha.max":       "Senha deve ter no máximo 72 bytes.",
	"senha.lowercase": "Senha deve conter pelo menos uma letra minúscula.",
	"senha.uppercase": "Senha deve conter pelo menos uma letra maiúscula.",
	"senha.digit":     "Senha deve conter pelo menos um número.",
	"senha.special":   "Senha deve conter pelo menos um caractere especial.",
}

// RegisterInput é o payload de registro de usuário.
type RegisterInput struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginInput é o payload de login. A política de senha também vale aqui, para
// rejeitar cedo entradas que nunca poderiam estar cadastradas.
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// DecodeRegistration lê e valida um registro de usuário.
func DecodeRegistration(r io.Reader) (domain.UsuarioRegistration, error) {
	var in RegisterInput
	if err := decodeAndCheck(r, &in, usuarioMessages); err != nil {
		return domain.UsuarioRegistration{}, err
	}

	return domain.UsuarioRegistration{Nome: in.Nome, Email: in.Email, Senha: in.Senha}, nil
}

// DecodeCredentials lê e valida credenciais de login.
func DecodeCredentials(r io.Reader) (domain.Credentials, error) {
	var in LoginInput
	if err := decodeAndCheck(r, &in, usuarioMessages); err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{Email: in.Email, Senha: in.Senha}, nil
}
