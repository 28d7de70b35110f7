package cliente

// request DTOs
type criarClienteRequest struct {
	Nome        string  `json:"nome"`
	CPF         string  `json:"cpf"`
	Telefone    string  `json:"telefone"`
	Endereco    string  `json:"endereco"`
	TaxaJuros   float64 `json:"taxa_juros"`
	PerfilRisco string  `json:"perfil_risco"`
}

// ClienteComEstoqueDTO devolve o cadastro com os campos derivados que a
// listagem exibe.
type ClienteComEstoqueDTO struct {
	Cliente
	EstoqueKg float64 `json:"estoque_kg"`
}

// MontarListaComEstoque anexa o estoque depositado a cada cliente.
func MontarListaComEstoque(clientes []Cliente, estoque map[uint]float64) []ClienteComEstoqueDTO {
	lista := make([]ClienteComEstoqueDTO, 0, len(clientes))
	for _, c := range clientes {
		lista = append(lista, ClienteComEstoqueDTO{Cliente: c, EstoqueKg: estoque[c.ID]})
	}
	return lista
}
