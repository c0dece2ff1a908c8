package database

import (
	"database/sql"
	"testing"

	"gestaobikes/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLTableBuilders(t *testing.T) {
	table := NewSQLTable(nil, TABLE_CONTACTS, ContactCodec)

	t.Run("select keeps verbatim column names", func(t *testing.T) {
		query, args, err := table.buildSelect(Query{
			Filter: []Field{F(schemas.CONTACT_FIELD_STAGE, "Qualificado")},
			Order:  &Order{Field: schemas.CONTACT_FIELD_CREATED_AT, Descending: true},
		})
		require.NoError(t, err)
		assert.Contains(t, query, "FROM `Gestao de contatos`")
		assert.Contains(t, query, "`Name_Contact`, `nome_completo`")
		assert.Contains(t, query, " WHERE `intenção` = ?")
		assert.Contains(t, query, " ORDER BY `criado_em` DESC")
		assert.Equal(t, []any{"Qualificado"}, args)
	})

	t.Run("insert has one placeholder per column", func(t *testing.T) {
		query := table.buildInsert()
		assert.Equal(t, len(ContactCodec.Columns), countPlaceholders(query))
		assert.Contains(t, query, "INSERT INTO `Gestao de contatos` (`id`, ")
	})

	t.Run("update", func(t *testing.T) {
		query, args, err := table.buildUpdate(ByID("c1"), []Field{F(schemas.CONTACT_FIELD_STAGE, "Perguntas")})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE `Gestao de contatos` SET `intenção` = ? WHERE `id` = ?", query)
		assert.Equal(t, []any{"Perguntas", "c1"}, args)
	})

	t.Run("delete", func(t *testing.T) {
		query, args, err := table.buildDelete(ByID("c1"))
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM `Gestao de contatos` WHERE `id` = ?", query)
		assert.Equal(t, []any{"c1"}, args)
	})

	t.Run("unknown columns are rejected", func(t *testing.T) {
		_, _, err := table.buildSelect(Query{Filter: []Field{F("1=1; DROP TABLE x; --", 1)}})
		assert.ErrorIs(t, err, ErrUnknownField)

		_, _, err = table.buildUpdate(ByID("c1"), []Field{F("nope", 1)})
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("mutations need a match key", func(t *testing.T) {
		_, _, err := table.buildDelete(nil)
		assert.ErrorIs(t, err, ErrEmptyMatch)
		_, _, err = table.buildUpdate(nil, []Field{F(schemas.CONTACT_FIELD_STAGE, "x")})
		assert.ErrorIs(t, err, ErrEmptyMatch)
	})
}

func countPlaceholders(s string) int {
	n := 0
	for _, r := range s {
		if r == '?' {
			n++
		}
	}
	return n
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "`vídeo`", quoteIdent("vídeo"))
	assert.Equal(t, "`a``b`", quoteIdent("a`b"))
}

func TestContactCodecScan(t *testing.T) {
	row := []any{"c1", "Ana", nil, "11987654321", nil, nil, nil, nil, nil, "Urban", "Qualificado", "quer bike", "não", "19-11-2025"}
	scan := func(dest ...any) error {
		require.Len(t, dest, len(row))
		for i, d := range dest {
			require.NoError(t, d.(*sql.NullString).Scan(row[i]))
		}
		return nil
	}

	c, err := ContactCodec.Scan(scan)
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, schemas.StageQualified, c.Stage)
	assert.Equal(t, schemas.AIPauseNo, c.PauseAI)
	assert.Empty(t, c.FullName)
	assert.Equal(t, "19-11-2025", c.CreatedAt)
}
