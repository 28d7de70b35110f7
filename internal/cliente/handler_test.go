package cliente_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestaocacau/api-cacau/internal/cliente"
	"github.com/gestaocacau/api-cacau/internal/transacao"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoRouterClientes(db *gorm.DB, cascata bool) *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := cliente.NewHandler(db, log, cascata)
	r := mux.NewRouter()
	r.HandleFunc("/clientes", h.CriarCliente).Methods("POST")
	r.HandleFunc("/clientes", h.ListarClientes).Methods("GET")
	r.HandleFunc("/clientes/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", h.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", h.DeletarCliente).Methods("DELETE")
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

func TestHandlerCriarCliente(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	rec := requisicaoJSON(t, r, "POST", "/clientes", map[string]string{
		"nome": "João da Silva", "cpf": "123.456.789-00", "telefone": "73 99999-0000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado cliente.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	assert.NotZero(t, criado.ID)
	assert.Equal(t, 0.0, criado.SaldoAtual)
}

func TestHandlerCriarClienteSemCPF(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	rec := requisicaoJSON(t, r, "POST", "/clientes", map[string]string{"nome": "João"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCriarClienteCPFDuplicado(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	corpo := map[string]string{"nome": "João", "cpf": "123.456.789-00"}
	require.Equal(t, http.StatusCreated, requisicaoJSON(t, r, "POST", "/clientes", corpo).Code)

	rec := requisicaoJSON(t, r, "POST", "/clientes", corpo)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CPF já cadastrado")
}

func TestHandlerListarClientesComEstoque(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	c := &cliente.Cliente{Nome: "João", CPF: "123.456.789-00"}
	require.NoError(t, cliente.NewRepository(db).Criar(c))
	require.NoError(t, transacao.NewRepository(db).Registrar(&transacao.Transacao{
		ClienteID: c.ID, Tipo: transacao.TipoDeposito, PesoKg: 35,
	}))

	rec := requisicaoJSON(t, r, "GET", "/clientes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var lista []cliente.ClienteComEstoqueDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, 35.0, lista[0].EstoqueKg)
}

func TestHandlerDeletarClienteComTransacoes(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	c := &cliente.Cliente{Nome: "João", CPF: "123.456.789-00"}
	require.NoError(t, cliente.NewRepository(db).Criar(c))
	require.NoError(t, transacao.NewRepository(db).Registrar(&transacao.Transacao{
		ClienteID: c.ID, Tipo: transacao.TipoPagamento, ValorTotal: 10,
	}))

	rec := requisicaoJSON(t, r, "DELETE", "/clientes/1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "possui transações")
}

func TestHandlerDeletarClienteInexistente(t *testing.T) {
	db := novoBancoTeste(t)
	r := novoRouterClientes(db, false)

	rec := requisicaoJSON(t, r, "DELETE", "/clientes/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
