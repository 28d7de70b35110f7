package transacao

import (
	"time"

	"gorm.io/gorm"
)

// Transacao é um lançamento imutável da conta corrente: criada e excluída,
// nunca alterada. ValorAssinado é a parcela que entra na soma do saldo;
// ValorTotal guarda a magnitude bruta para exibição no extrato.
type Transacao struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClienteID     uint      `gorm:"not null;index" json:"cliente_id"`
	Tipo          Tipo      `gorm:"size:30;not null;index" json:"tipo"`
	PesoKg        float64   `gorm:"not null;default:0" json:"peso_kg"`
	PrecoPorKg    float64   `gorm:"not null;default:0" json:"preco_por_kg"`
	ValorTotal    float64   `gorm:"not null;default:0" json:"valor_total"`
	ValorAssinado float64   `gorm:"not null;default:0" json:"valor_assinado"`
	Observacao    string    `gorm:"size:500" json:"observacao"`
	DataTransacao time.Time `gorm:"not null;index" json:"data_transacao"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName fixa o nome usado também pelas consultas por tabela em outros pacotes.
func (Transacao) TableName() string {
	return "transacoes"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Transacao{})
}
