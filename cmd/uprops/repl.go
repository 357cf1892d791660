package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/icu4g/ucore/config"
	"github.com/icu4g/ucore/upservice"
)

func replCmd(load serviceLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive history-backed query shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := load()
			if err != nil {
				return err
			}
			return runREPL(svc, cfg)
		},
	}
}

var replCommands = []string{"char ", "normalize ", "nfc ", "nfd ", "nfkc ", "nfkd ", "quickcheck ", "help", "quit", "exit"}

// runREPL drives an interactive session the way ConsoleReader drives the
// S370 console: a liner.Liner for prompting and history, a completer over
// the known command words, and a clean exit on Ctrl-D/Ctrl-C.
func runREPL(svc *upservice.Service, cfg *config.Config) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, partial) {
				matches = append(matches, c)
			}
		}
		return matches
	})

	historyPath := historyFilePath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("uprops interactive shell. Type 'help' for commands, 'quit' to exit.")
	for {
		command, err := line.Prompt("uprops> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		command = strings.TrimSpace(command)
		if command == "" {
			continue
		}
		line.AppendHistory(command)

		if command == "quit" || command == "exit" {
			break
		}
		if err := dispatchREPLCommand(svc, cfg, command); err != nil {
			fmt.Println("error:", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(historyPath), 0750); err == nil {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

func dispatchREPLCommand(svc *upservice.Service, cfg *config.Config, command string) error {
	fields := strings.Fields(command)
	switch fields[0] {
	case "help":
		printREPLHelp()
		return nil
	case "char":
		if len(fields) < 2 {
			return fmt.Errorf("usage: char <code-point>")
		}
		cp, err := parseCodePoint(fields[1])
		if err != nil {
			return err
		}
		info, err := svc.Char(cp)
		if err != nil {
			return err
		}
		printCharInfo(info)
		return nil
	case "normalize", "nfc", "nfd", "nfkc", "nfkd":
		form := cfg.REPL.DefaultForm
		rest := strings.TrimSpace(strings.TrimPrefix(command, fields[0]))
		if fields[0] != "normalize" {
			form = fields[0]
		} else if len(fields) >= 3 {
			form = fields[1]
			rest = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
		}
		f, err := upservice.ParseForm(form)
		if err != nil {
			return err
		}
		out, err := svc.Normalize(f, rest)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	case "quickcheck":
		if len(fields) < 3 {
			return fmt.Errorf("usage: quickcheck <form> <text>")
		}
		f, err := upservice.ParseForm(fields[1])
		if err != nil {
			return err
		}
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(command, fields[0]), " "+fields[1]))
		result, err := svc.QuickCheck(f, rest)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

func printREPLHelp() {
	fmt.Println(`commands:
  char <code-point>         print the property record for one code point
  normalize <form> <text>   normalize text (form: nfc, nfd, nfkc, nfkd)
  nfc/nfd/nfkc/nfkd <text>  shorthand for normalize <form> <text>
  quickcheck <form> <text>  run the quick-check pass for one form
  help                      show this message
  quit, exit                leave the shell`)
}

func historyFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".uprops_history"
	}
	return filepath.Join(dir, "ucore", "uprops_history")
}
