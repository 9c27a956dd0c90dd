package validation_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/validation"
)

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Messages()
}

// --- Agente ---

func TestDecodeAgente_Success_NormalizesSlashes(t *testing.T) {
	body := `{"nome":"Ana Paula","dataDeIncorporacao":"2005/05/15","cargo":"Investigadora"}`

	agente, err := validation.DecodeAgente(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, domain.Agente{Nome: "Ana Paula", DataDeIncorporacao: "2005-05-15", Cargo: "Investigadora"}, agente)
}

func TestDecodeAgente_Fail_FutureDate(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format(domain.DateLayout)
	body := fmt.Sprintf(`{"nome":"X","dataDeIncorporacao":%q,"cargo":"Y"}`, future)

	_, err := validation.DecodeAgente(strings.NewReader(body))

	assert.Equal(t, []string{"dataDeIncorporacao não pode ser uma data futura"}, messagesOf(t, err))
	assert.Equal(t, 400, err.(apperror.AppError).HTTPStatus())
}

func TestDecodeAgente_TodayIsAccepted(t *testing.T) {
	today := time.Now().Format(domain.DateLayout)
	body := fmt.Sprintf(`{"nome":"X","dataDeIncorporacao":%q,"cargo":"Y"}`, today)

	_, err := validation.DecodeAgente(strings.NewReader(body))

	assert.NoError(t, err)
}

func TestDecodeAgente_Fail_BadDateFormats(t *testing.T) {
	for _, date := range []string{"15-05-2005", "2005-5-15", "2005-02-30", "ontem"} {
		t.Run(date, func(t *testing.T) {
			body := fmt.Sprintf(`{"nome":"X","dataDeIncorporacao":%q,"cargo":"Y"}`, date)

			_, err := validation.DecodeAgente(strings.NewReader(body))

			assert.Equal(t, []string{"dataDeIncorporacao deve ser uma data válida no formato YYYY-MM-DD"}, messagesOf(t, err))
		})
	}
}

func TestDecodeAgente_Fail_AggregatesMessages(t *testing.T) {
	_, err := validation.DecodeAgente(strings.NewReader(`{"nome":"","cargo":""}`))

	msgs := messagesOf(t, err)
	assert.Equal(t, []string{
		"nome não pode ser vazio",
		"dataDeIncorporacao é obrigatória (YYYY-MM-DD ou YYYY/MM/DD)",
		"cargo não pode ser vazio",
	}, msgs)
	assert.Equal(t, strings.Join(msgs, ", "), err.(apperror.AppError).Message())
}

func TestDecodeAgente_Fail_UnknownField(t *testing.T) {
	body := `{"nome":"X","dataDeIncorporacao":"2000-01-01","cargo":"Y","patente":"alta"}`

	_, err := validation.DecodeAgente(strings.NewReader(body))

	assert.Equal(t, []string{"Campo não permitido: patente"}, messagesOf(t, err))
}

func TestDecodeAgente_Fail_WrongTypeKeepsOtherMessages(t *testing.T) {
	_, err := validation.DecodeAgente(strings.NewReader(`{"nome":42}`))

	assert.Equal(t, []string{
		"nome é obrigatório (string)",
		"dataDeIncorporacao é obrigatória (YYYY-MM-DD ou YYYY/MM/DD)",
		"cargo é obrigatório (string)",
	}, messagesOf(t, err))
}

func TestDecodeAgentePatch_Fail_WrongType(t *testing.T) {
	_, err := validation.DecodeAgentePatch(strings.NewReader(`{"cargo":true}`))

	assert.Equal(t, []string{"cargo é obrigatório (string)"}, messagesOf(t, err))
}

func TestDecodeAgente_Fail_InvalidJSON(t *testing.T) {
	for _, body := range []string{"", "{", "[]"} {
		_, err := validation.DecodeAgente(strings.NewReader(body))
		assert.Equal(t, []string{"Payload JSON inválido."}, messagesOf(t, err), "body %q", body)
	}
}

func TestDecodeAgentePatch_OnlyCargo(t *testing.T) {
	patch, err := validation.DecodeAgentePatch(strings.NewReader(`{"cargo":"X"}`))

	require.NoError(t, err)
	require.NotNil(t, patch.Cargo)
	assert.Equal(t, "X", *patch.Cargo)
	assert.Nil(t, patch.Nome)
	assert.Nil(t, patch.DataDeIncorporacao)
}

func TestDecodeAgentePatch_PresentFieldsKeepFullRules(t *testing.T) {
	future := time.Now().AddDate(0, 0, 2).Format("2006/01/02")
	body := fmt.Sprintf(`{"nome":"","dataDeIncorporacao":%q}`, future)

	_, err := validation.DecodeAgentePatch(strings.NewReader(body))

	assert.Equal(t, []string{
		"nome não pode ser vazio",
		"dataDeIncorporacao não pode ser uma data futura",
	}, messagesOf(t, err))
}

func TestDecodeAgentePatch_Fail_Empty(t *testing.T) {
	_, err := validation.DecodeAgentePatch(strings.NewReader(`{}`))

	assert.Equal(t, []string{"Nenhum campo informado para atualização."}, messagesOf(t, err))
}

// --- Caso ---

func TestDecodeCaso_Success(t *testing.T) {
	body := `{"titulo":"Furto","descricao":"Relato de furto","status":"solucionado","agente_id":2}`

	caso, err := validation.DecodeCaso(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, domain.Caso{Titulo: "Furto", Descricao: "Relato de furto", Status: domain.StatusSolucionado, AgenteID: 2}, caso)
}

func TestDecodeCaso_Fail_ClientSuppliedID(t *testing.T) {
	body := `{"id":9,"titulo":"Furto","descricao":"d","status":"aberto","agente_id":2}`

	_, err := validation.DecodeCaso(strings.NewReader(body))

	assert.Equal(t, []string{"Id inválido, o id é criado automaticamente e não é alterável"}, messagesOf(t, err))
}

func TestDecodeCaso_Fail_StatusAndAgenteID(t *testing.T) {
	body := `{"titulo":"Furto","descricao":"d","status":"arquivado","agente_id":0}`

	_, err := validation.DecodeCaso(strings.NewReader(body))

	assert.Equal(t, []string{
		"status é obrigatório (aberto ou solucionado)",
		"agente_id deve ser um número inteiro positivo",
	}, messagesOf(t, err))
}

func TestDecodeCaso_Fail_NonIntegerAgenteID(t *testing.T) {
	for _, raw := range []string{`"1"`, `1.5`} {
		body := fmt.Sprintf(`{"titulo":"t","descricao":"d","status":"aberto","agente_id":%s}`, raw)

		_, err := validation.DecodeCaso(strings.NewReader(body))

		assert.Equal(t, []string{"agente_id é obrigatório (Id de um agente existente - integer)"}, messagesOf(t, err))
	}
}

func TestDecodeCaso_Fail_TypeAndRuleViolationsTogether(t *testing.T) {
	_, err := validation.DecodeCaso(strings.NewReader(`{"titulo":1,"status":"x"}`))

	assert.Equal(t, []string{
		"titulo é obrigatório (string)",
		"descricao é obrigatória (string)",
		"status é obrigatório (aberto ou solucionado)",
		"agente_id é obrigatório (Id de um agente existente - integer)",
	}, messagesOf(t, err))
}

func TestDecodeCaso_Fail_AgenteIDBeyondInt4(t *testing.T) {
	body := `{"titulo":"t","descricao":"d","status":"aberto","agente_id":3000000000}`

	_, err := validation.DecodeCaso(strings.NewReader(body))
	assert.Equal(t, []string{"agente_id fora do intervalo permitido"}, messagesOf(t, err))

	_, err = validation.DecodeCasoPatch(strings.NewReader(`{"agente_id":3000000000}`))
	assert.Equal(t, []string{"agente_id fora do intervalo permitido"}, messagesOf(t, err))

	caso, err := validation.DecodeCaso(strings.NewReader(
		`{"titulo":"t","descricao":"d","status":"aberto","agente_id":2147483647}`))
	require.NoError(t, err)
	assert.Equal(t, 2147483647, caso.AgenteID)
}

func TestDecodeCaso_Fail_MissingEverything(t *testing.T) {
	_, err := validation.DecodeCaso(strings.NewReader(`{}`))

	assert.Len(t, messagesOf(t, err), 4)
}

func TestDecodeCasoPatch_Partial(t *testing.T) {
	patch, err := validation.DecodeCasoPatch(strings.NewReader(`{"status":"solucionado"}`))

	require.NoError(t, err)
	require.NotNil(t, patch.Status)
	assert.Equal(t, domain.StatusSolucionado, *patch.Status)
	assert.Nil(t, patch.Titulo)
	assert.Nil(t, patch.AgenteID)
}

func TestDecodeCasoPatch_Fail_IDAndNegativeAgente(t *testing.T) {
	_, err := validation.DecodeCasoPatch(strings.NewReader(`{"id":1,"agente_id":-3}`))

	assert.Equal(t, []string{
		"agente_id deve ser um número inteiro positivo",
		"Id inválido, o id é criado automaticamente e não é alterável",
	}, messagesOf(t, err))
}

// --- Usuario ---

func TestDecodeRegistration_Success(t *testing.T) {
	body := `{"nome":"Lucas","email":"lucas@gmail.com","senha":"Senha#123"}`

	reg, err := validation.DecodeRegistration(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, domain.UsuarioRegistration{Nome: "Lucas", Email: "lucas@gmail.com", Senha: "Senha#123"}, reg)
}

func TestDecodeRegistration_Fail_PasswordRulesAreIndependent(t *testing.T) {
	body := `{"nome":"Lucas","email":"lucas@gmail.com","senha":"abc"}`

	_, err := validation.DecodeRegistration(strings.NewReader(body))

	assert.Equal(t, []string{
		"Senha deve ter pelo menos 8 caracteres.",
		"Senha deve conter pelo menos uma letra maiúscula.",
		"Senha deve conter pelo menos um número.",
		"Senha deve conter pelo menos um caractere especial.",
	}, messagesOf(t, err))
}

func TestDecodeRegistration_Fail_EachPasswordRule(t *testing.T) {
	cases := map[string]string{
		"SENHA#123": "Senha deve conter pelo menos uma letra minúscula.",
		"senha#123": "Senha deve conter pelo menos uma letra maiúscula.",
		"Senha#abc": "Senha deve conter pelo menos um número.",
		"Senha1234": "Senha deve conter pelo menos um caractere especial.",
	}
	for senha, expected := range cases {
		t.Run(senha, func(t *testing.T) {
			body := fmt.Sprintf(`{"nome":"Lucas","email":"lucas@gmail.com","senha":%q}`, senha)

			_, err := validation.DecodeRegistration(strings.NewReader(body))

			assert.Equal(t, []string{expected}, messagesOf(t, err))
		})
	}
}

func TestDecodeRegistration_Fail_PasswordOverBcryptLimit(t *testing.T) {
	senha := "Aa1#" + strings.Repeat("x", 84)
	body := fmt.Sprintf(`{"nome":"Lucas","email":"lucas@gmail.com","senha":%q}`, senha)

	_, err := validation.DecodeRegistration(strings.NewReader(body))
	assert.Equal(t, []string{"Senha deve ter no máximo 72 bytes."}, messagesOf(t, err))

	// O limite é em bytes: "é" ocupa dois.
	ok := "Aa1#" + strings.Repeat("é", 34)
	_, err = validation.DecodeRegistration(strings.NewReader(
		fmt.Sprintf(`{"nome":"Lucas","email":"lucas@gmail.com","senha":%q}`, ok)))
	require.NoError(t, err)

	tooLong := "Aa1#" + strings.Repeat("é", 35)
	_, err = validation.DecodeRegistration(strings.NewReader(
		fmt.Sprintf(`{"nome":"Lucas","email":"lucas@gmail.com","senha":%q}`, tooLong)))
	assert.Equal(t, []string{"Senha deve ter no máximo 72 bytes."}, messagesOf(t, err))
}

func TestDecodeRegistration_Fail_EmailAndNome(t *testing.T) {
	body := `{"nome":"","email":"nao-e-email","senha":"Senha#123"}`

	_, err := validation.DecodeRegistration(strings.NewReader(body))

	assert.Equal(t, []string{"Nome é obrigatório.", "Email inválido."}, messagesOf(t, err))
}

func TestDecodeCredentials(t *testing.T) {
	creds, err := validation.DecodeCredentials(strings.NewReader(`{"email":"maria@gmail.com","senha":"Senha#123"}`))
	require.NoError(t, err)
	assert.Equal(t, "maria@gmail.com", creds.Email)

	_, err = validation.DecodeCredentials(strings.NewReader(`{"email":"","senha":""}`))
	assert.Equal(t, []string{"Email é obrigatório.", "Senha é obrigatória."}, messagesOf(t, err))
}
