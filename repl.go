package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"txkv/kvstore"
	"txkv/query"

	"github.com/rs/zerolog/log"
)

func startRepl(in io.Reader, out io.Writer, kvStore *kvstore.KVStore[int64]) error {
	reader := bufio.NewScanner(in)

	fmt.Fprintln(out, "KV store started. Type commands (or 'HELP' for help):")

	for {
		fmt.Fprint(out, "> ")

		if !reader.Scan() {
			return reader.Err()
		}

		cmd, err := query.Parse(reader.Text())
		if err != nil {
			fmt.Fprintln(out, "ERR:", err)
			continue
		}

		if cmd.Type == query.CommandExit {
			log.Debug().Msg("repl: exit requested")
			return nil
		}

		if err := execute(out, kvStore, cmd); err != nil {
			log.Debug().
				Err(err).
				Msg("repl: command failed")

			fmt.Fprintln(out, "ERR:", err)
		}
	}
}

func execute(out io.Writer, kvStore *kvstore.KVStore[int64], cmd *query.Command) error {
	switch cmd.Type {

	case query.CommandHelp:
		printHelp(out)

	case query.CommandBegin:
		txID, err := kvStore.Begin()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "OK (tx %s started)\n", txID)

	case query.CommandCommit:
		if err := kvStore.Commit(); err != nil {
			return err
		}

		fmt.Fprintln(out, "OK")

	case query.CommandRollback:
		if err := kvStore.Rollback(); err != nil {
			return err
		}

		fmt.Fprintln(out, "OK")

	case query.CommandPut:
		if err := kvStore.Put(cmd.Key, cmd.Value); err != nil {
			return err
		}

		fmt.Fprintln(out, "OK")

	case query.CommandGet:
		val, found, err := kvStore.Get(cmd.Key)
		if err != nil {
			return err
		}

		if !found {
			fmt.Fprintln(out, "(nil)")
		} else {
			fmt.Fprintln(out, val)
		}

	case query.CommandDelete:
		deleted, err := kvStore.Delete(cmd.Key)
		if err != nil {
			return err
		}

		if !deleted {
			fmt.Fprintln(out, "(nil)")
		} else {
			fmt.Fprintln(out, "OK")
		}

	case query.CommandKeys:
		keys := kvStore.Keys()
		if len(keys) == 0 {
			fmt.Fprintln(out, "(empty)")
		} else {
			fmt.Fprintln(out, strings.Join(keys, "\n"))
		}

	default:
		return fmt.Errorf("unsupported command %d", cmd.Type)
	}

	return nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "AVAILABLE COMMANDS")
	fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  %-24s | %-23s | %s\n", "Name", "Usage", "Description")
	fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────────────────")

	order := []query.CommandType{
		query.CommandBegin,
		query.CommandCommit,
		query.CommandRollback,
		query.CommandGet,
		query.CommandPut,
		query.CommandDelete,
		query.CommandKeys,
		query.CommandHelp,
		query.CommandExit,
	}

	for _, cmdType := range order {
		meta := query.CommandRegistry[cmdType]
		fmt.Fprintf(out, "- %-25s %-25s %s\n", meta.Name, meta.Usage, meta.Description)
	}

	fmt.Fprintln(out)
}
