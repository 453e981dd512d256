package pgddl

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/litespec/internal/litespec"
)

func TestGenerateTable(t *testing.T) {
	doc, err := litespec.Compile(`
		model Customer object {
			name: string @required
			age: integer
			active: boolean @required
			balance: decimal
			score: number
			address: @ref(Address)
			tags: array(string)
			created_at: string @format(date-time)
		}
	`)
	assert.NoError(t, err)

	sql, err := GenerateTable(doc)
	assert.NoError(t, err)

	assert.Contains(t, sql, `create table if not exists "customer"`)
	assert.Contains(t, sql, `"name" text not null`)
	assert.Contains(t, sql, `"active" boolean not null`)
	assert.Contains(t, sql, `"age" bigint`)
	assert.Contains(t, sql, `"balance" numeric`)
	assert.Contains(t, sql, `"score" double precision`)
	assert.Contains(t, sql, `"address" jsonb`)
	assert.Contains(t, sql, `"tags" jsonb`)
	assert.Contains(t, sql, `"created_at" jsonb`)
}

// A keyword field name must still produce parseable DDL.
func TestGenerateTableQuotesIdentifiers(t *testing.T) {
	doc, err := litespec.Compile(`
		model Ordering object {
			order: integer @required
		}
	`)
	assert.NoError(t, err)

	sql, err := GenerateTable(doc)
	assert.NoError(t, err)
	assert.Contains(t, sql, `"order" bigint not null`)
}

func TestGenerateTableWithoutModel(t *testing.T) {
	doc, err := litespec.Compile(`
		def Address object {
			street: string
		}
	`)
	assert.NoError(t, err)

	sql, err := GenerateTable(doc)
	assert.NoError(t, err)
	assert.Empty(t, sql)
}
