package query

const (
	GET    = "GET"
	PUT    = "PUT"
	SET    = "SET"
	DELETE = "DELETE"
	KEYS   = "KEYS"

	TRANSACTION = "TRANSACTION"
	BEGIN       = "BEGIN"
	COMMIT      = "COMMIT"
	ROLLBACK    = "ROLLBACK"
	ABORT       = "ABORT"

	HELP = "HELP"
	EXIT = "EXIT"
)
