package database

import (
	"database/sql"
	"time"

	"gestaobikes/schemas"
)

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanStrings(scan func(dest ...any) error, n int) ([]string, error) {
	raw := make([]sql.NullString, n)
	dest := make([]any, n)
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := scan(dest...); err != nil {
		return nil, err
	}

	out := make([]string, n)
	for i, r := range raw {
		out[i] = r.String
	}
	return out, nil
}

var ContactCodec = SQLCodec[schemas.Contact]{
	Columns: []string{
		FIELD_ID,
		schemas.CONTACT_FIELD_NAME,
		schemas.CONTACT_FIELD_FULL_NAME,
		schemas.CONTACT_FIELD_PHONE,
		schemas.CONTACT_FIELD_DOCUMENT,
		schemas.CONTACT_FIELD_BIRTH_DATE,
		schemas.CONTACT_FIELD_MARITAL_STATUS,
		schemas.CONTACT_FIELD_PROFESSION,
		schemas.CONTACT_FIELD_MONTHLY_INCOME,
		schemas.CONTACT_FIELD_MODEL_INTEREST,
		schemas.CONTACT_FIELD_STAGE,
		schemas.CONTACT_FIELD_SUMMARY,
		schemas.CONTACT_FIELD_PAUSE_AI,
		schemas.CONTACT_FIELD_CREATED_AT,
	},
	Values: func(c *schemas.Contact) []any {
		return []any{
			c.ID,
			nullable(c.Name),
			nullable(c.FullName),
			c.Phone,
			nullable(c.Document),
			nullable(c.BirthDate),
			nullable(string(c.MaritalStatus)),
			nullable(c.Profession),
			nullable(c.MonthlyIncome),
			nullable(c.ModelInterest),
			nullable(string(c.Stage)),
			nullable(c.Summary),
			nullable(string(c.PauseAI)),
			c.CreatedAt,
		}
	},
	Scan: func(scan func(dest ...any) error) (schemas.Contact, error) {
		v, err := scanStrings(scan, 14)
		if err != nil {
			return schemas.Contact{}, err
		}
		return schemas.Contact{
			ID:            v[0],
			Name:          v[1],
			FullName:      v[2],
			Phone:         v[3],
			Document:      v[4],
			BirthDate:     v[5],
			MaritalStatus: schemas.MaritalStatus(v[6]),
			Profession:    v[7],
			MonthlyIncome: v[8],
			ModelInterest: v[9],
			Stage:         schemas.Stage(v[10]),
			Summary:       v[11],
			PauseAI:       schemas.AIPause(v[12]),
			CreatedAt:     v[13],
		}, nil
	},
}

var BikeCodec = SQLCodec[schemas.Bike]{
	Columns: []string{
		FIELD_ID,
		schemas.BIKE_FIELD_MODEL,
		schemas.BIKE_FIELD_PRICE,
		schemas.BIKE_FIELD_RANGE,
		schemas.BIKE_FIELD_LOAD_CAPACITY,
		schemas.BIKE_FIELD_BATTERY,
		schemas.BIKE_FIELD_LICENSE_REQUIRED,
		schemas.BIKE_FIELD_NOTES,
		schemas.BIKE_FIELD_PHOTO_1,
		schemas.BIKE_FIELD_PHOTO_2,
		schemas.BIKE_FIELD_PHOTO_3,
		schemas.BIKE_FIELD_VIDEO,
		schemas.BIKE_FIELD_STATUS,
	},
	Values: func(b *schemas.Bike) []any {
		return []any{
			b.ID,
			b.Model,
			nullable(b.Price),
			nullable(b.Range),
			nullable(b.LoadCapacity),
			nullable(b.Battery),
			nullable(b.LicenseRequired),
			nullable(b.Notes),
			nullable(b.Photo1),
			nullable(b.Photo2),
			nullable(b.Photo3),
			nullable(b.Video),
			nullable(b.Status),
		}
	},
	Scan: func(scan func(dest ...any) error) (schemas.Bike, error) {
		v, err := scanStrings(scan, 13)
		if err != nil {
			return schemas.Bike{}, err
		}
		return schemas.Bike{
			ID:              v[0],
			Model:           v[1],
			Price:           v[2],
			Range:           v[3],
			LoadCapacity:    v[4],
			Battery:         v[5],
			LicenseRequired: v[6],
			Notes:           v[7],
			Photo1:          v[8],
			Photo2:          v[9],
			Photo3:          v[10],
			Video:           v[11],
			Status:          v[12],
		}, nil
	},
}

var SaleCodec = SQLCodec[schemas.Sale]{
	Columns: []string{
		FIELD_ID,
		schemas.SALE_FIELD_CUSTOMER_NAME,
		schemas.SALE_FIELD_CUSTOMER_PHONE,
		schemas.SALE_FIELD_BIKE_ID,
		schemas.SALE_FIELD_BIKE_MODEL,
		schemas.SALE_FIELD_FINANCED,
		schemas.SALE_FIELD_DOWN_PAYMENT,
		schemas.SALE_FIELD_FINAL_AMOUNT,
		schemas.SALE_FIELD_SALE_DATE,
		schemas.SALE_FIELD_CREATED_AT,
	},
	Values: func(s *schemas.Sale) []any {
		return []any{
			s.ID,
			s.CustomerName,
			s.CustomerPhone,
			s.BikeID,
			s.BikeModel,
			s.Financed,
			nullable(s.DownPayment),
			s.FinalAmount,
			s.SaleDate,
			s.CreatedAt,
		}
	},
	Scan: func(scan func(dest ...any) error) (schemas.Sale, error) {
		var (
			s           schemas.Sale
			downPayment sql.NullString
			saleDate    sql.NullString
			financed    sql.NullBool
			createdAt   sql.NullTime
		)
		err := scan(
			&s.ID,
			&s.CustomerName,
			&s.CustomerPhone,
			&s.BikeID,
			&s.BikeModel,
			&financed,
			&downPayment,
			&s.FinalAmount,
			&saleDate,
			&createdAt,
		)
		if err != nil {
			return schemas.Sale{}, err
		}
		s.Financed = financed.Bool
		s.DownPayment = downPayment.String
		s.SaleDate = saleDate.String
		s.CreatedAt = createdAt.Time
		return s, nil
	},
}

var StageChangeCodec = SQLCodec[schemas.StageChange]{
	Columns: []string{
		FIELD_ID,
		schemas.STAGE_CHANGE_FIELD_CONTACT_ID,
		"from",
		"to",
		"changed_by",
		schemas.STAGE_CHANGE_FIELD_CREATED_AT,
	},
	Values: func(c *schemas.StageChange) []any {
		return []any{c.ID, c.ContactID, nullable(string(c.From)), nullable(string(c.To)), nullable(c.ChangedBy), c.CreatedAt}
	},
	Scan: func(scan func(dest ...any) error) (schemas.StageChange, error) {
		var (
			c         schemas.StageChange
			from      sql.NullString
			to        sql.NullString
			changedBy sql.NullString
			createdAt time.Time
		)
		if err := scan(&c.ID, &c.ContactID, &from, &to, &changedBy, &createdAt); err != nil {
			return schemas.StageChange{}, err
		}
		c.From = schemas.Stage(from.String)
		c.To = schemas.Stage(to.String)
		c.ChangedBy = changedBy.String
		c.CreatedAt = createdAt
		return c, nil
	},
}
