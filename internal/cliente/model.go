package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente é o produtor de cacau com conta corrente na casa de compra.
// SaldoAtual é mantido incrementalmente pelo serviço de transações e deve
// sempre fechar com a soma dos valores assinados do extrato.
type Cliente struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nome        string    `gorm:"size:255;not null" json:"nome"`
	CPF         string    `gorm:"size:14;not null;uniqueIndex" json:"cpf"`
	Telefone    string    `gorm:"size:20" json:"telefone"`
	Endereco    string    `gorm:"size:255" json:"endereco"`
	TaxaJuros   float64   `gorm:"not null;default:0" json:"taxa_juros"`
	PerfilRisco string    `gorm:"size:50;not null;default:'Normal'" json:"perfil_risco"`
	SaldoAtual  float64   `gorm:"not null;default:0" json:"saldo_atual"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
