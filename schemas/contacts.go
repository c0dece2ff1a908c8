package schemas

// AIPause is the tri-state "pausar_ia" flag of a contact: unset, "sim" or "não".
type AIPause string

const (
	AIPauseUnset AIPause = ""
	AIPauseYes   AIPause = "sim"
	AIPauseNo    AIPause = "não"
)

type MaritalStatus string

const (
	MaritalStatusUnset    MaritalStatus = ""
	MaritalStatusSingle   MaritalStatus = "Solteiro"
	MaritalStatusMarried  MaritalStatus = "Casado"
	MaritalStatusDivorced MaritalStatus = "Divorciado"
	MaritalStatusWidowed  MaritalStatus = "Viúvo"
)

// Contact is a sales lead on the CRM board. Field names match the contacts
// table of the hosted store, accents included.
type Contact struct {
	ID            string        `json:"id" bson:"_id"`
	Name          string        `json:"Name_Contact" bson:"Name_Contact" validate:"required,max=100"`
	FullName      string        `json:"nome_completo,omitempty" bson:"nome_completo,omitempty" validate:"omitempty,min=3,max=200"`
	Phone         string        `json:"phone" bson:"phone" validate:"phone"`
	Document      string        `json:"cpf,omitempty" bson:"cpf,omitempty" validate:"omitempty,cpf"`
	BirthDate     string        `json:"data_nascimento,omitempty" bson:"data_nascimento,omitempty" validate:"omitempty,birthdate"`
	MaritalStatus MaritalStatus `json:"estado_civil,omitempty" bson:"estado_civil,omitempty" validate:"omitempty,oneof=Solteiro Casado Divorciado Viúvo"`
	Profession    string        `json:"profissão,omitempty" bson:"profissão,omitempty" validate:"omitempty,max=100"`
	MonthlyIncome string        `json:"renda_mensal,omitempty" bson:"renda_mensal,omitempty"`
	ModelInterest string        `json:"modelo_interesse" bson:"modelo_interesse"`
	Stage         Stage         `json:"intenção" bson:"intenção" validate:"omitempty,stage"`
	Summary       string        `json:"resumo" bson:"resumo"`
	PauseAI       AIPause       `json:"pausar_ia" bson:"pausar_ia" validate:"omitempty,oneof=sim não"`
	CreatedAt     string        `json:"criado_em" bson:"criado_em"`
}

const (
	CONTACT_FIELD_ID             = "id"
	CONTACT_FIELD_NAME           = "Name_Contact"
	CONTACT_FIELD_FULL_NAME      = "nome_completo"
	CONTACT_FIELD_PHONE          = "phone"
	CONTACT_FIELD_DOCUMENT       = "cpf"
	CONTACT_FIELD_BIRTH_DATE     = "data_nascimento"
	CONTACT_FIELD_MARITAL_STATUS = "estado_civil"
	CONTACT_FIELD_PROFESSION     = "profissão"
	CONTACT_FIELD_MONTHLY_INCOME = "renda_mensal"
	CONTACT_FIELD_MODEL_INTEREST = "modelo_interesse"
	CONTACT_FIELD_STAGE          = "intenção"
	CONTACT_FIELD_SUMMARY        = "resumo"
	CONTACT_FIELD_PAUSE_AI       = "pausar_ia"
	CONTACT_FIELD_CREATED_AT     = "criado_em"
)
