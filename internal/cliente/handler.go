package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gestaocacau/api-cacau/internal/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de clientes.
type Handler struct {
	Repo            *Repository
	Log             *logrus.Logger
	ExclusaoCascata bool
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, log *logrus.Logger, exclusaoCascata bool) *Handler {
	return &Handler{
		Repo:            NewRepository(db),
		Log:             log,
		ExclusaoCascata: exclusaoCascata,
	}
}

// CriarCliente cadastra um novo cliente com saldo zerado.
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req criarClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "Payload inválido.")
		return
	}

	if req.Nome == "" || req.CPF == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Nome e CPF são obrigatórios.")
		return
	}

	c := Cliente{
		Nome:        req.Nome,
		CPF:         req.CPF,
		Telefone:    req.Telefone,
		Endereco:    req.Endereco,
		TaxaJuros:   req.TaxaJuros,
		PerfilRisco: req.PerfilRisco,
	}

	if err := h.Repo.Criar(&c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondErro(w, http.StatusConflict, "CPF já cadastrado.")
			return
		}
		h.Log.WithError(err).Error("erro ao cadastrar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, c)
}

// ListarClientes retorna todos os clientes com saldo e estoque derivados.
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListarTodos()
	if err != nil {
		h.Log.WithError(err).Error("erro ao listar clientes")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	estoque, err := h.Repo.EstoquePorCliente()
	if err != nil {
		h.Log.WithError(err).Error("erro ao calcular estoque por cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, MontarListaComEstoque(clientes, estoque))
}

// BuscarPorID retorna um cliente pelo ID.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Cliente não encontrado.")
			return
		}
		h.Log.WithError(err).Error("erro ao buscar cliente")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, c)
}

// AtualizarCliente altera os dados cadastrais de um cliente existente.
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var dados Cliente
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "Payload inválido.")
		return
	}

	if dados.Nome == "" || dados.CPF == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Nome e CPF são obrigatórios.")
		return
	}

	if err := h.Repo.Atualizar(uint(id), &dados); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondErro(w, http.StatusNotFound, "Cliente não encontrado.")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			utils.RespondErro(w, http.StatusConflict, "CPF já cadastrado.")
		default:
			h.Log.WithError(err).Error("erro ao atualizar cliente")
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Cliente atualizado com sucesso."})
}

// DeletarCliente remove um cliente respeitando a política de exclusão.
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	if err := h.Repo.Deletar(uint(id), h.ExclusaoCascata); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondErro(w, http.StatusNotFound, "Cliente não encontrado para exclusão.")
		case errors.Is(err, ErrPossuiTransacoes):
			utils.RespondErro(w, http.StatusConflict,
				"Não foi possível excluir o cliente. Ele possui transações registradas no extrato.")
		default:
			h.Log.WithError(err).Error("erro ao excluir cliente")
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor.")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Cliente excluído com sucesso."})
}
