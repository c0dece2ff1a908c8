package contacts

import (
	"context"
	"net/http"
	"slices"
	"time"

	"gestaobikes/database"
	"gestaobikes/locale"
	"gestaobikes/middlewares"
	"gestaobikes/schemas"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CONTACT_NOT_FOUND = "Contato não encontrado"

type Handler struct {
	Contacts     database.Table[schemas.Contact]
	StageChanges database.Table[schemas.StageChange]
	Logger       *zap.Logger
	Location     *time.Location
	Now          func() time.Time
}

func (h *Handler) logger(r *http.Request) *zap.Logger {
	return h.Logger.With(
		zap.String("request_id", middlewares.RequestIDFromContext(r.Context())),
		zap.String("contact_id", r.PathValue("id")),
	)
}

// selectNewestFirst loads every contact ordered by creation date, newest
// first. Contacts whose date cannot be read go last.
func (h *Handler) selectNewestFirst(ctx context.Context) ([]schemas.Contact, error) {
	contacts, err := h.Contacts.Select(ctx, database.Query{})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(contacts, func(a, b schemas.Contact) int {
		at, aok := locale.ParseDate(a.CreatedAt, h.Location)
		bt, bok := locale.ParseDate(b.CreatedAt, h.Location)
		switch {
		case aok && bok:
			return bt.Compare(at)
		case aok:
			return -1
		case bok:
			return 1
		}
		return 0
	})
	return contacts, nil
}

func changedBy(ctx context.Context) string {
	session, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		return ""
	}
	if session.Email != "" {
		return session.Email
	}
	return session.UserID
}

func (h *Handler) recordStageChange(ctx context.Context, contactID string, from, to schemas.Stage) (schemas.StageChange, error) {
	change := schemas.StageChange{
		ID:        uuid.NewString(),
		ContactID: contactID,
		From:      from,
		To:        to,
		ChangedBy: changedBy(ctx),
		CreatedAt: h.Now().UTC().Truncate(time.Millisecond),
	}
	return change, h.StageChanges.Insert(ctx, &change)
}

// editableFields is the patch of a full-record edit; id and criado_em stay.
func editableFields(c schemas.Contact) []database.Field {
	return []database.Field{
		database.F(schemas.CONTACT_FIELD_NAME, c.Name),
		database.F(schemas.CONTACT_FIELD_FULL_NAME, c.FullName),
		database.F(schemas.CONTACT_FIELD_PHONE, c.Phone),
		database.F(schemas.CONTACT_FIELD_DOCUMENT, c.Document),
		database.F(schemas.CONTACT_FIELD_BIRTH_DATE, c.BirthDate),
		database.F(schemas.CONTACT_FIELD_MARITAL_STATUS, string(c.MaritalStatus)),
		database.F(schemas.CONTACT_FIELD_PROFESSION, c.Profession),
		database.F(schemas.CONTACT_FIELD_MONTHLY_INCOME, c.MonthlyIncome),
		database.F(schemas.CONTACT_FIELD_MODEL_INTEREST, c.ModelInterest),
		database.F(schemas.CONTACT_FIELD_STAGE, string(c.Stage)),
		database.F(schemas.CONTACT_FIELD_SUMMARY, c.Summary),
		database.F(schemas.CONTACT_FIELD_PAUSE_AI, string(c.PauseAI)),
	}
}
