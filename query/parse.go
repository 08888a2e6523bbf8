package query

import (
	"errors"
	"strconv"
	"strings"
)

var InvalidCommandError = errors.New("invalid command")
var InvalidKeyError = errors.New("invalid key")
var InvalidValueError = errors.New("invalid value, expected an integer")
var InvalidNumberOfTokens = errors.New("invalid number of tokens")

func Parse(input string) (*Command, error) {
	trimmedInput := strings.TrimSpace(input)
	if trimmedInput == "" {
		return nil, InvalidCommandError
	}

	tokens, err := tokenize(trimmedInput)

	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, InvalidCommandError
	}

	switch strings.ToUpper(tokens[0]) {
	case PUT, SET:
		if len(tokens) != 3 {
			return nil, InvalidNumberOfTokens
		}

		key := tokens[1]

		if !isValidKey(key) {
			return nil, InvalidKeyError
		}

		value, err := strconv.ParseInt(tokens[2], 10, 64)
		if err != nil {
			return nil, InvalidValueError
		}

		return &Command{
			Key:   key,
			Value: value,
			Type:  CommandPut,
		}, nil

	case GET:
		return parseKeyCommand(tokens, CommandGet)

	case DELETE:
		return parseKeyCommand(tokens, CommandDelete)

	case KEYS:
		return parseBareCommand(tokens, CommandKeys)

	case EXIT:
		return parseBareCommand(tokens, CommandExit)

	case HELP:
		return parseBareCommand(tokens, CommandHelp)

	case BEGIN, COMMIT, ROLLBACK, ABORT:
		if len(tokens) != 1 {
			return nil, InvalidNumberOfTokens
		}

		return parseTransactionCommand(tokens[0])

	case TRANSACTION:
		if len(tokens) != 2 {
			return nil, InvalidNumberOfTokens
		}

		return parseTransactionCommand(tokens[1])

	default:
		return nil, InvalidCommandError
	}
}

func parseKeyCommand(tokens []string, commandType CommandType) (*Command, error) {
	if len(tokens) != 2 {
		return nil, InvalidNumberOfTokens
	}

	key := tokens[1]

	if !isValidKey(key) {
		return nil, InvalidKeyError
	}

	return &Command{
		Key:  key,
		Type: commandType,
	}, nil
}

func parseBareCommand(tokens []string, commandType CommandType) (*Command, error) {
	if len(tokens) != 1 {
		return nil, InvalidNumberOfTokens
	}

	return &Command{
		Type: commandType,
	}, nil
}

func parseTransactionCommand(verb string) (*Command, error) {
	switch strings.ToUpper(verb) {
	case BEGIN:
		return &Command{Type: CommandBegin}, nil

	case COMMIT:
		return &Command{Type: CommandCommit}, nil

	case ROLLBACK, ABORT:
		return &Command{Type: CommandRollback}, nil

	default:
		return nil, InvalidCommandError
	}
}

func isValidKey(key string) bool {
	if key == "" {
		return false
	}

	for i := 0; i < len(key); i++ {
		c := key[i]

		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.', c == ':':
		default:
			return false
		}
	}

	return true
}
