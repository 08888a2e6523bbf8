package query

type CommandType uint8

const (
	CommandGet CommandType = iota
	CommandPut
	CommandDelete
	CommandKeys

	CommandBegin
	CommandCommit
	CommandRollback

	CommandExit
	CommandHelp
)

type Command struct {
	Type  CommandType
	Key   string
	Value int64
}

type CommandMeta struct {
	Name        string
	Usage       string
	Description string
}

var CommandRegistry = map[CommandType]CommandMeta{
	CommandBegin: {
		Name:        "BEGIN",
		Usage:       "[TRANSACTION] BEGIN",
		Description: "Start a new transaction",
	},
	CommandCommit: {
		Name:        "COMMIT",
		Usage:       "[TRANSACTION] COMMIT",
		Description: "Commit current transaction",
	},
	CommandRollback: {
		Name:        "ROLLBACK",
		Usage:       "[TRANSACTION] ROLLBACK",
		Description: "Discard current transaction (alias: ABORT)",
	},
	CommandGet: {
		Name:        "GET",
		Usage:       "GET <key>",
		Description: "Get value of a key",
	},
	CommandPut: {
		Name:        "PUT",
		Usage:       "PUT <key> <integer>",
		Description: "Set value for a key in current transaction (alias: SET)",
	},
	CommandDelete: {
		Name:        "DELETE",
		Usage:       "DELETE <key>",
		Description: "Delete a key in current transaction",
	},
	CommandKeys: {
		Name:        "KEYS",
		Usage:       "KEYS",
		Description: "List visible keys",
	},
	CommandHelp: {
		Name:        "HELP",
		Usage:       "HELP",
		Description: "Show help message",
	},
	CommandExit: {
		Name:        "EXIT",
		Usage:       "EXIT",
		Description: "Exit the REPL",
	},
}
