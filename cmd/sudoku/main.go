// Command sudoku is the generalized N×N Sudoku workbench's REPL: a
// single game.State, fed one line at a time until EOF or exit.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"

	"sudokuworkbench/internal/command"
	"sudokuworkbench/internal/config"
	"sudokuworkbench/internal/game"
	"sudokuworkbench/internal/gameerr"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("sudoku: %v", err)
	}

	s := game.New(rand.New(rand.NewSource(cfg.Seed)), cfg.GenerateRetries)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		name, args, err := command.Parse(scanner.Text())
		if err != nil {
			fmt.Println("ERROR: invalid command")
			continue
		}
		if name == "" {
			continue
		}

		out, err := game.Dispatch(s, name, args)
		if err != nil {
			if gameerr.Fatal(err) {
				fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(formatUserError(err))
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
		if name == "exit" {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("sudoku: %v", err)
	}
}

func formatUserError(err error) string {
	switch {
	case errors.Is(err, gameerr.ErrInvalidCommand):
		return "ERROR: invalid command"
	case errors.Is(err, gameerr.ErrInvalidParameter):
		return fmt.Sprintf("Error: value not in range %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
