package syncing

import "strings"

// ErrorPolicy define o que acontece quando uma conta falha durante a sincronização de campanhas
type ErrorPolicy string

const (
	// ErrorPolicyFailFast interrompe o lote na primeira conta com erro
	ErrorPolicyFailFast ErrorPolicy = "fail_fast"
	// ErrorPolicyContinue registra o erro da conta e segue para a próxima
	ErrorPolicyContinue ErrorPolicy = "continue_on_error"
)

func ParseErrorPolicy(s string) ErrorPolicy {
	if ErrorPolicy(strings.ToLower(strings.TrimSpace(s))) == ErrorPolicyContinue {
		return ErrorPolicyContinue
	}

	return ErrorPolicyFailFast
}
