package db

// SQL query fragments used across multiple functions
const (
	// sqlRangeClause restricts a query to an inclusive dteday window
	sqlRangeClause = "WHERE dteday BETWEEN ? AND ?"
)
