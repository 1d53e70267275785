// Package ingesting transforma o texto CSV exportado da planilha em registros do domínio.
// Nada aqui acessa rede ou banco: as funções dependem apenas de suas entradas.
package ingesting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadGrid lê o CSV bruto como uma grade de células.
// Linhas podem ter quantidades diferentes de colunas.
func ReadGrid(raw []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	return grid, nil
}

// cell retorna a célula aparada na coluna informada, ou "" quando a linha é curta
func cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
