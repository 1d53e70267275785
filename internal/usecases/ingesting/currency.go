package ingesting

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Rúpia salva como UTF-8 e relida como Windows-1252 em algumas exportações
const mojibakeRupee = "â‚¹"

// CleanCurrency remove símbolos monetários, separadores de milhar e aspas e
// converte o resultado. Valores ilegíveis, vazios, negativos ou fora do alcance
// de um float64 viram 0.
func CleanCurrency(value string) float64 {
	value = strings.ReplaceAll(value, mojibakeRupee, "")

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.Sc, r):
			return -1
		case r == ',' || r == '"' || r == '\'':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, value)

	if cleaned == "" {
		return 0
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	if amount.IsNegative() {
		return 0
	}

	f, _ := amount.Float64()
	if !isFinite(f) {
		return 0
	}
	return f
}

// parseCount converte uma célula de contagem do funil. Vazio, inválido, negativo
// ou grande demais para um int vira 0.
func parseCount(value string) int {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0
	}

	if n, err := strconv.Atoi(value); err == nil {
		return max(n, 0)
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || !isFinite(f) || f < 0 || f >= maxCountFloat {
		return 0
	}

	return int(f)
}

// maxCountFloat é 2^63: todo float abaixo disso cabe em int64
const maxCountFloat = float64(math.MaxInt64)

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
