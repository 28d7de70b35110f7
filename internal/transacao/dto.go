package transacao

import "github.com/gestaocacau/api-cacau/internal/cliente"

// request DTOs
type registrarTransacaoRequest struct {
	ClienteID     uint    `json:"clienteId"`
	Tipo          string  `json:"tipo"`
	PesoKg        float64 `json:"peso_kg"`
	PrecoPorKg    float64 `json:"preco_por_kg"`
	ValorTotal    float64 `json:"valor_total"`
	Observacao    string  `json:"observacao"`
	DataTransacao string  `json:"data_transacao"`
}

// ClienteExtratoDTO resume o cliente no topo da conta corrente.
type ClienteExtratoDTO struct {
	ID         uint    `json:"id"`
	Nome       string  `json:"nome"`
	CPF        string  `json:"cpf"`
	Telefone   string  `json:"telefone"`
	SaldoAtual float64 `json:"saldo_atual"`
	EstoqueKg  float64 `json:"estoque_kg"`
}

// ContaCorrenteDTO é a resposta de GET /conta-corrente/{clienteId}.
type ContaCorrenteDTO struct {
	Cliente ClienteExtratoDTO `json:"cliente"`
	Extrato []Transacao       `json:"extrato"`
}

// MontarContaCorrenteDTO junta cadastro, saldo, estoque e extrato filtrado.
func MontarContaCorrenteDTO(c cliente.Cliente, estoqueKg float64, extrato []Transacao) ContaCorrenteDTO {
	return ContaCorrenteDTO{
		Cliente: ClienteExtratoDTO{
			ID:         c.ID,
			Nome:       c.Nome,
			CPF:        c.CPF,
			Telefone:   c.Telefone,
			SaldoAtual: c.SaldoAtual,
			EstoqueKg:  estoqueKg,
		},
		Extrato: extrato,
	}
}
