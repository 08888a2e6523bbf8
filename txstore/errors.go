package txstore

import "errors"

var TransactionConflictError = errors.New("txstore: transaction already in progress")
var NoActiveTransactionError = errors.New("txstore: no transaction in progress")
