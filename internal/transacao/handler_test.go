package transacao_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestaocacau/api-cacau/internal/transacao"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoRouterTransacoes(db *gorm.DB) *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := transacao.NewHandler(db, log)
	r := mux.NewRouter()
	r.HandleFunc("/transacoes", h.RegistrarTransacao).Methods("POST")
	r.HandleFunc("/transacoes/{id}", h.ExcluirTransacao).Methods("DELETE")
	r.HandleFunc("/conta-corrente/{clienteId}", h.ContaCorrente).Methods("GET")
	return r
}

func requisicaoJSON(t *testing.T, r http.Handler, metodo, caminho string, corpo interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(metodo, caminho, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRegistrarTransacao(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterTransacoes(db)
	c := novoClienteTeste(t, db, "111.111.111-11")

	rec := requisicaoJSON(t, r, "POST", "/transacoes", map[string]interface{}{
		"clienteId":      c.ID,
		"tipo":           "COMPRA_PRAZO",
		"peso_kg":        10,
		"preco_por_kg":   5,
		"data_transacao": "2026-03-15",
		"observacao":     "safra de março",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resposta struct {
		Message   string              `json:"message"`
		Transacao transacao.Transacao `json:"transacao"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resposta))
	assert.NotZero(t, resposta.Transacao.ID)
	assert.Equal(t, -50.0, resposta.Transacao.ValorAssinado)

	assert.Equal(t, -50.0, saldoDe(t, db, c.ID))
}

func TestHandlerRegistrarTransacaoValidacoes(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterTransacoes(db)
	c := novoClienteTeste(t, db, "111.111.111-11")

	tests := []struct {
		name       string
		corpo      map[string]interface{}
		wantStatus int
	}{
		{"sem cliente", map[string]interface{}{"tipo": "PAGAMENTO", "valor_total": 10}, http.StatusBadRequest},
		{"sem tipo", map[string]interface{}{"clienteId": c.ID, "valor_total": 10}, http.StatusBadRequest},
		{"tipo desconhecido", map[string]interface{}{"clienteId": c.ID, "tipo": "SAQUE", "valor_total": 10}, http.StatusBadRequest},
		{"compra a prazo sem preço", map[string]interface{}{"clienteId": c.ID, "tipo": "COMPRA_PRAZO", "peso_kg": 10}, http.StatusBadRequest},
		{"data inválida", map[string]interface{}{"clienteId": c.ID, "tipo": "PAGAMENTO", "valor_total": 10, "data_transacao": "15/03/2026"}, http.StatusBadRequest},
		{"cliente inexistente", map[string]interface{}{"clienteId": 9999, "tipo": "PAGAMENTO", "valor_total": 10}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := requisicaoJSON(t, r, "POST", "/transacoes", tt.corpo)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, 0.0, saldoDe(t, db, c.ID))
}

func TestHandlerExcluirTransacao(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterTransacoes(db)
	c := novoClienteTeste(t, db, "111.111.111-11")

	tr := transacao.Transacao{ClienteID: c.ID, Tipo: transacao.TipoPagamento, ValorTotal: 80}
	require.NoError(t, transacao.NewRepository(db).Registrar(&tr))
	require.Equal(t, 80.0, saldoDe(t, db, c.ID))

	rec := requisicaoJSON(t, r, "DELETE", fmt.Sprintf("/transacoes/%d", tr.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "saldo revertido")
	assert.Equal(t, 0.0, saldoDe(t, db, c.ID))

	rec = requisicaoJSON(t, r, "DELETE", fmt.Sprintf("/transacoes/%d", tr.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerContaCorrente(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterTransacoes(db)
	repo := transacao.NewRepository(db)
	c := novoClienteTeste(t, db, "111.111.111-11")

	datas := []string{"2026-03-01", "2026-03-10", "2026-03-20"}
	for _, d := range datas {
		rec := requisicaoJSON(t, r, "POST", "/transacoes", map[string]interface{}{
			"clienteId": c.ID, "tipo": "PAGAMENTO", "valor_total": 10, "data_transacao": d,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.NoError(t, repo.Registrar(&transacao.Transacao{
		ClienteID: c.ID, Tipo: transacao.TipoDeposito, PesoKg: 12,
	}))

	rec := requisicaoJSON(t, r, "GET",
		fmt.Sprintf("/conta-corrente/%d?startDate=2026-03-05&endDate=2026-03-10", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var conta transacao.ContaCorrenteDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conta))
	assert.Equal(t, c.ID, conta.Cliente.ID)
	assert.Equal(t, 30.0, conta.Cliente.SaldoAtual)
	assert.Equal(t, 12.0, conta.Cliente.EstoqueKg)
	require.Len(t, conta.Extrato, 1)
	assert.Equal(t, transacao.TipoPagamento, conta.Extrato[0].Tipo)
}

func TestHandlerContaCorrenteClienteInexistente(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterTransacoes(db)

	rec := requisicaoJSON(t, r, "GET", "/conta-corrente/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
