package pgddl

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

func verifySql(sql string) error {
	if _, err := pg_query.Parse(sql); err != nil {
		return fmt.Errorf(`generated DDL does not parse: %w`, err)
	}

	return nil
}
