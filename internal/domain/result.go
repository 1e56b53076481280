package domain

// Result é o formato de retorno das operações públicas do fluxo de integração.
// Nenhuma falha é propagada como panic ou erro além da operação que a reporta.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// MsgUnexpectedError é a mensagem genérica para falhas não previstas
const MsgUnexpectedError = "Erro inesperado"

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func OkWithMessage[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func Fail[T any](code, message string) Result[T] {
	return Result[T]{Success: false, Code: code, Message: message}
}

// FailWithData mantém o que foi processado antes da falha
func FailWithData[T any](data T, code, message string) Result[T] {
	return Result[T]{Success: false, Data: data, Code: code, Message: message}
}

// Recover converte um panic em Result de falha. Deve ser usado diretamente no defer:
//
//	defer domain.Recover(&res, code, func(p any) { ... })
func Recover[T any](res *Result[T], code string, onPanic func(p any)) {
	p := recover()
	if p == nil {
		return
	}

	if onPanic != nil {
		onPanic(p)
	}

	*res = Fail[T](code, MsgUnexpectedError)
}
