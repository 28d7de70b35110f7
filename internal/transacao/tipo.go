package transacao

import (
	"errors"
	"math"
)

// Tipo identifica a natureza do lançamento na conta corrente.
type Tipo string

const (
	// Compra a prazo: o cacau entra e o valor vira dívida no saldo.
	TipoCompraPrazo Tipo = "COMPRA_PRAZO"
	// Compra à vista: dinheiro na mão, saldo não muda.
	TipoCompraAVista Tipo = "COMPRA_AVISTA"
	// Depósito: apenas guarda cacau, conta só no estoque.
	TipoDeposito Tipo = "DEPOSITO"
	// Pagamento: baixa na dívida.
	TipoPagamento Tipo = "PAGAMENTO"
	// Variante genérica de duas pernas, mantida por compatibilidade com a
	// primeira versão do sistema.
	TipoCredito Tipo = "CREDITO"
	TipoDebito  Tipo = "DEBITO"
)

var (
	ErrTipoInvalido          = errors.New("tipo de transação inválido")
	ErrPesoPrecoObrigatorios = errors.New("peso e preço por kg são obrigatórios e devem ser maiores que zero")
	ErrPesoObrigatorio       = errors.New("peso é obrigatório e deve ser maior que zero")
	ErrValorObrigatorio      = errors.New("valor é obrigatório e deve ser maior que zero")
)

// Valida informa se o tipo pertence ao conjunto fechado reconhecido.
func (t Tipo) Valida() bool {
	switch t {
	case TipoCompraPrazo, TipoCompraAVista, TipoDeposito, TipoPagamento, TipoCredito, TipoDebito:
		return true
	}
	return false
}

// ValidaCampos aplica as obrigatoriedades de cada tipo antes de qualquer escrita.
func (t Tipo) ValidaCampos(pesoKg, precoPorKg, valorInformado float64) error {
	switch t {
	case TipoCompraPrazo, TipoCompraAVista:
		if pesoKg <= 0 || precoPorKg <= 0 {
			return ErrPesoPrecoObrigatorios
		}
	case TipoDeposito:
		if pesoKg <= 0 {
			return ErrPesoObrigatorio
		}
	case TipoPagamento, TipoCredito, TipoDebito:
		if valorInformado <= 0 && (pesoKg <= 0 || precoPorKg <= 0) {
			return ErrValorObrigatorio
		}
	default:
		return ErrTipoInvalido
	}
	return nil
}

// ValorBruto deriva o valor da transação: peso * preço arredondado a duas
// casas quando ambos estão presentes; caso contrário, o valor informado.
func ValorBruto(pesoKg, precoPorKg, valorInformado float64) float64 {
	if pesoKg > 0 && precoPorKg > 0 {
		return arredonda2(pesoKg * precoPorKg)
	}
	return math.Abs(valorInformado)
}

// ValorAssinado aplica a convenção de sinal: compra a prazo gera saldo
// devedor (negativo), pagamento e crédito abatem (positivo); compra à vista
// e depósito não mexem no saldo.
func ValorAssinado(t Tipo, bruto float64) float64 {
	switch t {
	case TipoCompraPrazo, TipoDebito:
		return -math.Abs(bruto)
	case TipoPagamento, TipoCredito:
		return math.Abs(bruto)
	}
	// COMPRA_AVISTA e DEPOSITO
	return 0
}

// ContribuicaoEstoque informa quanto o lançamento adiciona ao cacau em depósito.
func ContribuicaoEstoque(t Tipo, pesoKg float64) float64 {
	if t == TipoDeposito {
		return pesoKg
	}
	return 0
}

func arredonda2(v float64) float64 {
	return math.Round(v*100) / 100
}
