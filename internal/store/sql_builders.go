package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Dynamic queries are assembled with squirrel; the static ones live as
// constants in sql_queries.go. SQLite accepts the $N placeholder format, so
// both styles stay consistent.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildOldestQuery selects up to limit queue entries in FIFO order.
// limit <= 0 means the whole queue.
func buildOldestQuery(limit int) (string, []any, error) {
	q := builder.
		Select("seq", "record_id", "kind", "data", "modified_at", "device_id").
		From("outbound_queue").
		OrderBy("seq ASC")

	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	return q.ToSql()
}

// buildRemoveQueueQuery deletes the queue entries with the given sequence
// numbers.
func buildRemoveQueueQuery(seqs []int64) (string, []any, error) {
	return builder.
		Delete("outbound_queue").
		Where(sq.Eq{"seq": seqs}).
		ToSql()
}

// buildListRecordsQuery selects records matching filter.
func buildListRecordsQuery(filter RecordFilter) (string, []any, error) {
	q := builder.
		Select("record_id", "data", "modified_at", "device_id", "deleted").
		From("records").
		OrderBy("record_id ASC")

	if len(filter.RecordIDs) > 0 {
		q = q.Where(sq.Eq{"record_id": filter.RecordIDs})
	}
	if !filter.IncludeDeleted {
		q = q.Where(sq.Eq{"deleted": false})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	return q.ToSql()
}
