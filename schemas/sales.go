package schemas

import (
	"time"
)

// Sale is a completed transaction. Amounts are decimal-comma text and the
// sale date is DD-MM-YYYY text; CreatedAt is the real insertion instant.
type Sale struct {
	ID            string    `json:"id" bson:"_id"`
	CustomerName  string    `json:"cliente_nome" bson:"cliente_nome" validate:"min=3,max=200"`
	CustomerPhone string    `json:"cliente_telefone" bson:"cliente_telefone" validate:"phone"`
	BikeID        string    `json:"bike_id" bson:"bike_id" validate:"uuid"`
	BikeModel     string    `json:"bike_modelo" bson:"bike_modelo" validate:"required"`
	Financed      bool      `json:"financiado" bson:"financiado"`
	DownPayment   string    `json:"valor_entrada,omitempty" bson:"valor_entrada,omitempty"`
	FinalAmount   string    `json:"valor_final" bson:"valor_final" validate:"amount"`
	SaleDate      string    `json:"data_venda" bson:"data_venda" validate:"omitempty,storedate"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

const (
	SALE_FIELD_ID             = "id"
	SALE_FIELD_CUSTOMER_NAME  = "cliente_nome"
	SALE_FIELD_CUSTOMER_PHONE = "cliente_telefone"
	SALE_FIELD_BIKE_ID        = "bike_id"
	SALE_FIELD_BIKE_MODEL     = "bike_modelo"
	SALE_FIELD_FINANCED       = "financiado"
	SALE_FIELD_DOWN_PAYMENT   = "valor_entrada"
	SALE_FIELD_FINAL_AMOUNT   = "valor_final"
	SALE_FIELD_SALE_DATE      = "data_venda"
	SALE_FIELD_CREATED_AT     = "created_at"
)
