// Package validation transforma payloads JSON em registros de domínio tipados,
// acumulando uma mensagem por restrição violada.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperror "delegacia/internal/errors"
)

const (
	msgInvalidJSON  = "Payload JSON inválido."
	msgEmptyPatch   = "Nenhum campo informado para atualização."
	minSenhaLength  = 8
	maxSenhaBytes   = 72 // limite do bcrypt
	unknownFieldPfx = "json: unknown field "
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// now é substituível em testes.
var now = time.Now

var validate = newValidator()

// messageTable mapeia "campo.tag" para a mensagem exibida ao cliente.
// A tag especial "type" cobre erros de tipo na decodificação do JSON.
type messageTable map[string]string

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os erros usam o nome do campo no JSON, não o nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "isodate", isISODate)
	mustRegister(v, "notfuture", isNotFuture)

	v.RegisterStructValidation(casoIDReadOnly, CasoInput{}, CasoPatchInput{})
	v.RegisterStructValidation(senhaRules, RegisterInput{}, LoginInput{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: falha ao registrar %q: %v", tag, err))
	}
}

// isISODate aceita apenas datas de calendário reais em YYYY-MM-DD.
func isISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !isoDatePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// isNotFuture rejeita datas posteriores ao dia corrente. Datas malformadas são
// deixadas para isodate.
func isNotFuture(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !isoDatePattern.MatchString(value) {
		return true
	}
	return value <= now().Format("2006-01-02")
}

// normalizeDate troca barras por hífens antes da checagem de formato.
func normalizeDate(s *string) {
	if s != nil {
		*s = strings.ReplaceAll(*s, "/", "-")
	}
}

// senhaRules verifica cada regra de senha de forma independente, para que todas as
// violações apareçam na resposta.
func senhaRules(sl validator.StructLevel) {
	var senha string
	switch in := sl.Current().Interface().(type) {
	case RegisterInput:
		senha = in.Senha
	case LoginInput:
		senha = in.Senha
	}
	if senha == "" {
		return // coberto por required
	}

	var lower, upper, digit, special bool
	for _, r := range senha {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			special = true
		}
	}

	if utf8.RuneCountInString(senha) < minSenhaLength {
		sl.ReportError(senha, "senha", "Senha", "min", fmt.Sprint(minSenhaLength))
	}
	if len(senha) > maxSenhaBytes {
		sl.ReportError(senha, "senha", "Senha", "max", fmt.Sprint(maxSenhaBytes))
	}
	if !lower {
		sl.ReportError(senha, "senha", "Senha", "lowercase", "")
	}
	if !upper {
		sl.ReportError(senha, "senha", "Senha", "uppercase", "")
	}
	if !digit {
		sl.ReportError(senha, "senha", "Senha", "digit", "")
	}
	if !special {
		sl.ReportError(senha, "senha", "Senha", "special", "")
	}
}

// casoIDReadOnly rejeita qualquer id enviado pelo cliente.
func casoIDReadOnly(sl validator.StructLevel) {
	var id interface{}
	switch in := sl.Current().Interface().(type) {
	case CasoInput:
		id = in.ID
	case CasoPatchInput:
		id = in.ID
	}
	if id != nil {
		sl.ReportError(id, "id", "ID", "readonly", "")
	}
}

// typeFailure é o primeiro erro de tipo encontrado no corpo. O decoder segue
// preenchendo os demais campos, então a validação ainda roda sobre eles.
type typeFailure struct {
	field   string
	message string
}

// decodeStrict decodifica o corpo rejeitando campos desconhecidos.
func decodeStrict(r io.Reader, dst interface{}, msgs messageTable) (*typeFailure, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		msg, ok := msgs[typeErr.Field+".type"]
		if !ok {
			msg = fmt.Sprintf("%s possui tipo inválido", typeErr.Field)
		}
		return &typeFailure{field: typeErr.Field, message: msg}, nil
	case strings.HasPrefix(err.Error(), unknownFieldPfx):
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPfx), `"`)
		return nil, apperror.NewValidationError(fmt.Sprintf("Campo não permitido: %s", field))
	default:
		return nil, apperror.NewValidationError(msgInvalidJSON)
	}
}

// check executa o validator e converte as violações em um único ValidationError.
// O campo com erro de tipo contribui só com a mensagem de tipo.
func check(v interface{}, msgs messageTable, tf *typeFailure) error {
	var out []string
	if tf != nil {
		out = append(out, tf.message)
	}

	err := validate.Struct(v)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperror.NewInternalError("falha inesperada na validação", err)
		}
		for _, fe := range fieldErrs {
			if tf != nil && fe.Field() == tf.field {
				continue
			}
			out = append(out, msgs.messageFor(fe))
		}
	}

	if len(out) == 0 {
		return nil
	}
	return apperror.NewValidationError(out...)
}

// decodeAndCheck junta decodeStrict e check para payloads sem pré-processamento.
func decodeAndCheck(r io.Reader, dst interface{}, msgs messageTable) error {
	tf, err := decodeStrict(r, dst, msgs)
	if err != nil {
		return err
	}
	return check(dst, msgs, tf)
}

func (m messageTable) messageFor(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
}
