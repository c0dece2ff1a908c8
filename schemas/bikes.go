package schemas

const (
	BIKE_STATUS_AVAILABLE = "Disponível"
	BIKE_STATUS_SOLD      = "Vendida"

	BIKE_LICENSE_YES = "sim"
	BIKE_LICENSE_NO  = "não"
)

// Bike is a catalog item. Price, range and capacity are free text as typed
// by the operator.
type Bike struct {
	ID              string `json:"id" bson:"_id"`
	Model           string `json:"modelo" bson:"modelo" validate:"min=3,max=200"`
	Price           string `json:"valor" bson:"valor" validate:"required"`
	Range           string `json:"autonomia" bson:"autonomia" validate:"required,max=50"`
	LoadCapacity    string `json:"aguenta" bson:"aguenta" validate:"required,max=50"`
	Battery         string `json:"Bateria,omitempty" bson:"Bateria,omitempty" validate:"omitempty,max=100"`
	LicenseRequired string `json:"precisa_CNH" bson:"precisa_CNH" validate:"oneof=sim não"`
	Notes           string `json:"obs" bson:"obs" validate:"omitempty,max=1000"`
	Photo1          string `json:"foto_1" bson:"foto_1" validate:"omitempty,url"`
	Photo2          string `json:"foto_2" bson:"foto_2" validate:"omitempty,url"`
	Photo3          string `json:"foto_3" bson:"foto_3" validate:"omitempty,url"`
	Video           string `json:"vídeo" bson:"vídeo" validate:"omitempty,url"`
	Status          string `json:"status" bson:"status" validate:"required"`
}

const (
	BIKE_FIELD_ID               = "id"
	BIKE_FIELD_MODEL            = "modelo"
	BIKE_FIELD_PRICE            = "valor"
	BIKE_FIELD_RANGE            = "autonomia"
	BIKE_FIELD_LOAD_CAPACITY    = "aguenta"
	BIKE_FIELD_BATTERY          = "Bateria"
	BIKE_FIELD_LICENSE_REQUIRED = "precisa_CNH"
	BIKE_FIELD_NOTES            = "obs"
	BIKE_FIELD_PHOTO_1          = "foto_1"
	BIKE_FIELD_PHOTO_2          = "foto_2"
	BIKE_FIELD_PHOTO_3          = "foto_3"
	BIKE_FIELD_VIDEO            = "vídeo"
	BIKE_FIELD_STATUS           = "status"
)

// CatalogBike is the public, read-only projection of an available bike.
type CatalogBike struct {
	ID              string   `json:"id"`
	Model           string   `json:"modelo"`
	Price           string   `json:"valor"`
	Range           string   `json:"autonomia"`
	LoadCapacity    string   `json:"aguenta"`
	Battery         string   `json:"Bateria,omitempty"`
	LicenseRequired string   `json:"precisa_CNH"`
	Notes           string   `json:"obs"`
	Photos          []string `json:"fotos"`
	Video           string   `json:"vídeo,omitempty"`
}
