package repositories

import sq "github.com/Masterminds/squirrel"

// psql — единый построитель запросов с $-плейсхолдерами PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
