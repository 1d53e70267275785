package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client interface {
	FetchCSV(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

// FetchError junta falha de rede, timeout e status não-200 num único resultado
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("falha ao buscar planilha %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("falha ao buscar planilha %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewClient() Client {
	return &SheetsClient{
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP permite injetar o http.Client (usado nos testes)
func NewClientWithHTTP(httpClient *http.Client) Client {
	return &SheetsClient{
		httpClient: httpClient,
	}
}

// FetchCSV baixa o corpo completo da exportação CSV. Não há retentativa aqui:
// quem chama decide se tenta de novo.
func (c *SheetsClient) FetchCSV(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("erro ao criar a requisição: %w", err)}
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("requisição falhou com status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("erro ao ler a resposta: %w", err)}
	}

	return body, nil
}
