// Package docs registra a documentação Swagger servida em /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/agentes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lista todos os agentes, com filtro opcional por cargo e ordenação pela data de incorporação.",
                "produces": ["application/json"],
                "tags": ["agentes"],
                "summary": "Lista agentes",
                "parameters": [
                    {"type": "string", "description": "Filtra por cargo", "name": "cargo", "in": "query"},
                    {"type": "string", "description": "dataDeIncorporacao ou -dataDeIncorporacao", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Lista de agentes", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Agente"}}},
                    "400": {"description": "Parâmetro sort inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "dataDeIncorporacao aceita YYYY-MM-DD ou YYYY/MM/DD e não pode ser futura.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agentes"],
                "summary": "Cria um novo agente",
                "parameters": [
                    {"description": "Dados do agente", "name": "agente", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.AgenteInput"}}
                ],
                "responses": {
                    "201": {"description": "Agente criado com sucesso", "schema": {"$ref": "#/definitions/domain.Agente"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/agentes/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["agentes"],
                "summary": "Obtém um agente por ID",
                "parameters": [{"type": "integer", "description": "ID do agente", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Agente encontrado", "schema": {"$ref": "#/definitions/domain.Agente"}},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agentes"],
                "summary": "Substitui um agente",
                "parameters": [
                    {"type": "integer", "description": "ID do agente", "name": "id", "in": "path", "required": true},
                    {"description": "Dados completos do agente", "name": "agente", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.AgenteInput"}}
                ],
                "responses": {
                    "200": {"description": "Agente atualizado", "schema": {"$ref": "#/definitions/domain.Agente"}},
                    "400": {"description": "Payload ou ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Apenas os campos enviados são alterados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agentes"],
                "summary": "Atualiza parcialmente um agente",
                "parameters": [
                    {"type": "integer", "description": "ID do agente", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "agente", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.AgentePatchInput"}}
                ],
                "responses": {
                    "200": {"description": "Agente atualizado", "schema": {"$ref": "#/definitions/domain.Agente"}},
                    "400": {"description": "Payload ou ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Os casos do agente são removidos em cascata.",
                "tags": ["agentes"],
                "summary": "Remove um agente",
                "parameters": [{"type": "integer", "description": "ID do agente", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Agente removido"},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/casos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Filtros opcionais por status e agente_id, combinados com AND.",
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Lista casos",
                "parameters": [
                    {"type": "string", "description": "aberto ou solucionado", "name": "status", "in": "query"},
                    {"type": "integer", "description": "ID do agente responsável", "name": "agente_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Lista de casos", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Caso"}}},
                    "400": {"description": "Filtro inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "agente_id precisa referenciar um agente existente.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Cria um novo caso",
                "parameters": [
                    {"description": "Dados do caso", "name": "caso", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.CasoInput"}}
                ],
                "responses": {
                    "201": {"description": "Caso criado com sucesso", "schema": {"$ref": "#/definitions/domain.Caso"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/casos/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Busca o termo em titulo ou descricao, sem diferenciar maiúsculas. Nenhum resultado retorna 404.",
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Pesquisa casos",
                "parameters": [{"type": "string", "description": "Termo de pesquisa", "name": "q", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "Casos encontrados", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Caso"}}},
                    "400": {"description": "Termo ausente", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Nenhum caso encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/casos/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Obtém um caso por ID",
                "parameters": [{"type": "integer", "description": "ID do caso", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Caso encontrado", "schema": {"$ref": "#/definitions/domain.Caso"}},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Caso não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Substitui um caso",
                "parameters": [
                    {"type": "integer", "description": "ID do caso", "name": "id", "in": "path", "required": true},
                    {"description": "Dados completos do caso", "name": "caso", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.CasoInput"}}
                ],
                "responses": {
                    "200": {"description": "Caso atualizado", "schema": {"$ref": "#/definitions/domain.Caso"}},
                    "400": {"description": "Payload ou ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Caso ou agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Atualiza parcialmente um caso",
                "parameters": [
                    {"type": "integer", "description": "ID do caso", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "caso", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.CasoPatchInput"}}
                ],
                "responses": {
                    "200": {"description": "Caso atualizado", "schema": {"$ref": "#/definitions/domain.Caso"}},
                    "400": {"description": "Payload ou ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Caso ou agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["casos"],
                "summary": "Remove um caso",
                "parameters": [{"type": "integer", "description": "ID do caso", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Caso removido"},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Caso não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/casos/{id}/agente": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["casos"],
                "summary": "Obtém o agente responsável por um caso",
                "parameters": [{"type": "integer", "description": "ID do caso", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Agente responsável", "schema": {"$ref": "#/definitions/domain.Agente"}},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Caso ou agente não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Valida nome, e-mail e a política de senha, e salva apenas o hash bcrypt.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra um novo usuário",
                "parameters": [
                    {"description": "Dados de registro", "name": "registration", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Usuário criado com sucesso", "schema": {"$ref": "#/definitions/usuario.RegisterResponse"}},
                    "400": {"description": "Payload inválido ou e-mail já cadastrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "E-mail desconhecido e senha errada retornam a mesma resposta 401.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário e retorna um JWT",
                "parameters": [
                    {"description": "Credenciais do usuário", "name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "Token JWT emitido", "schema": {"$ref": "#/definitions/usuario.LoginResponse"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Encerra a sessão",
                "responses": {
                    "200": {"description": "Logout realizado", "schema": {"$ref": "#/definitions/usuario.MessageResponse"}}
                }
            }
        },
        "/usuarios/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Retorna o usuário autenticado",
                "responses": {
                    "200": {"description": "Usuário autenticado", "schema": {"$ref": "#/definitions/usuario.MeResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Usuário não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Remove uma conta de usuário",
                "parameters": [{"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Usuário removido"},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Usuário não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Agente": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "nome": {"type": "string", "example": "Rommel Carneiro"},
                "dataDeIncorporacao": {"type": "string", "example": "1992-10-04"},
                "cargo": {"type": "string", "example": "delegado"}
            }
        },
        "domain.Caso": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "titulo": {"type": "string", "example": "homicidio"},
                "descricao": {"type": "string"},
                "status": {"type": "string", "enum": ["aberto", "solucionado"]},
                "agente_id": {"type": "integer", "example": 1}
            }
        },
        "domain.Usuario": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "nome": {"type": "string", "example": "Lucas"},
                "email": {"type": "string", "example": "lucas@gmail.com"}
            }
        },
        "domain.ErrorResponse": {
            "description": "Estrutura padronizada para respostas de erro na API.",
            "type": "object",
            "properties": {
                "status": {"type": "integer", "example": 400},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "validation.AgenteInput": {
            "type": "object",
            "required": ["nome", "dataDeIncorporacao", "cargo"],
            "properties": {
                "nome": {"type": "string"},
                "dataDeIncorporacao": {"type": "string", "example": "2020-01-15"},
                "cargo": {"type": "string"}
            }
        },
        "validation.AgentePatchInput": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "dataDeIncorporacao": {"type": "string", "example": "2020-01-15"},
                "cargo": {"type": "string"}
            }
        },
        "validation.CasoInput": {
            "type": "object",
            "required": ["titulo", "descricao", "status", "agente_id"],
            "properties": {
                "titulo": {"type": "string"},
                "descricao": {"type": "string"},
                "status": {"type": "string", "enum": ["aberto", "solucionado"]},
                "agente_id": {"type": "integer"}
            }
        },
        "validation.CasoPatchInput": {
            "type": "object",
            "properties": {
                "titulo": {"type": "string"},
                "descricao": {"type": "string"},
                "status": {"type": "string", "enum": ["aberto", "solucionado"]},
                "agente_id": {"type": "integer"}
            }
        },
        "validation.RegisterInput": {
            "type": "object",
            "required": ["nome", "email", "senha"],
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string", "description": "Mínimo de 8 caracteres, com minúscula, maiúscula, número e caractere especial."}
            }
        },
        "validation.LoginInput": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "usuario.LoginResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer", "example": 200},
                "message": {"type": "string", "example": "Login realizado com sucesso"},
                "access_token": {"type": "string"}
            }
        },
        "usuario.RegisterResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer", "example": 201},
                "message": {"type": "string", "example": "Usuário registrado com sucesso"},
                "user": {"$ref": "#/definitions/domain.Usuario"}
            }
        },
        "usuario.MessageResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer", "example": 200},
                "message": {"type": "string"}
            }
        },
        "usuario.MeResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer", "example": 200},
                "user": {"$ref": "#/definitions/domain.Usuario"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Informe \"Bearer <token>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo guarda as informações exportadas da documentação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API da Delegacia",
	Description:      "Gestão de agentes, casos e usuários do departamento de polícia.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
