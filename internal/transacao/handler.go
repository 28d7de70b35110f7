package transacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gestaocacau/api-cacau/internal/cliente"
	"github.com/gestaocacau/api-cacau/internal/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de transações e da conta corrente.
type Handler struct {
	Repo     *Repository
	Clientes *cliente.Repository
	Log      *logrus.Logger
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		Repo:     NewRepository(db),
		Clientes: cliente.NewRepository(db),
		Log:      log,
	}
}

// RegistrarTransacao lança uma movimentação e atualiza o saldo do cliente.
func (h *Handler) RegistrarTransacao(w http.ResponseWriter, r *http.Request) {
	var req registrarTransacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "Payload inválido.")
		return
	}

	if req.ClienteID == 0 || req.Tipo == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Dados básicos da transação (cliente, tipo) são obrigatórios.")
		return
	}

	t := Transacao{
		ClienteID:  req.ClienteID,
		Tipo:       Tipo(req.Tipo),
		PesoKg:     req.PesoKg,
		PrecoPorKg: req.PrecoPorKg,
		ValorTotal: req.ValorTotal,
		Observacao: req.Observacao,
	}

	if req.DataTransacao != "" {
		data, err := parseData(req.DataTransacao)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "Data da transação inválida.")
			return
		}
		t.DataTransacao = data
	}

	if err := h.Repo.Registrar(&t); err != nil {
		switch {
		case errors.Is(err, ErrClienteNaoEncontrado):
			utils.RespondErro(w, http.StatusNotFound, "Cliente não encontrado.")
		case errors.Is(err, ErrTipoInvalido),
			errors.Is(err, ErrPesoPrecoObrigatorios),
			errors.Is(err, ErrPesoObrigatorio),
			errors.Is(err, ErrValorObrigatorio):
			utils.RespondErro(w, http.StatusBadRequest, err.Error())
		default:
			h.Log.WithError(err).Error("erro ao registrar transação")
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor ao processar transação.")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Transação registrada e saldo atualizado com sucesso.",
		"transacao": t,
	})
}

// ExcluirTransacao remove o lançamento e reverte o saldo do cliente.
func (h *Handler) ExcluirTransacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	if err := h.Repo.Excluir(uint(id)); err != nil {
		if errors.Is(err, ErrTransacaoNaoEncontrada) {
			utils.RespondErro(w, http.StatusNotFound, "Transação não encontrada.")
			return
		}
		h.Log.WithError(err).Error("erro ao excluir transação")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor ao tentar excluir transação.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Transação excluída e saldo revertido com sucesso.",
	})
}

// ContaCorrente devolve o cliente com o extrato filtrado por período.
func (h *Handler) ContaCorrente(w http.ResponseWriter, r *http.Request) {
	clienteID, err := strconv.Atoi(mux.Vars(r)["clienteId"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var dataInicio, dataFim *time.Time
	if s := r.URL.Query().Get("startDate"); s != "" {
		d, err := parseData(s)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "startDate inválida.")
			return
		}
		dataInicio = &d
	}
	if s := r.URL.Query().Get("endDate"); s != "" {
		d, err := parseData(s)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "endDate inválida.")
			return
		}
		dataFim = &d
	}

	c, err := h.Clientes.BuscarPorID(uint(clienteID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Cliente não encontrado.")
			return
		}
		h.Log.WithError(err).Error("erro ao buscar conta corrente")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	extrato, err := h.Repo.ListarPorCliente(c.ID, dataInicio, dataFim)
	if err != nil {
		h.Log.WithError(err).Error("erro ao montar extrato")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	estoque, err := h.Repo.EstoqueDoCliente(c.ID)
	if err != nil {
		h.Log.WithError(err).Error("erro ao calcular estoque do cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, MontarContaCorrenteDTO(*c, estoque, extrato))
}

// parseData aceita data simples (formulário) ou RFC3339.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
