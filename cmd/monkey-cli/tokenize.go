package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"monkey/internal/lexer"
	"monkey/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mk",
	Short: "Tokenize a Monkey source file",
	Long:  `Tokenize breaks a Monkey source file into its tokens, the trailing EOF included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
}

type tokenRecord struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens := lexer.Tokenize(string(source))
	records := make([]tokenRecord, 0, len(tokens))
	illegal := 0
	for _, tok := range tokens {
		if tok.Type == token.ILLEGAL {
			illegal++
		}
		records = append(records, tokenRecord{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Position.Line,
			Column:  tok.Position.Column,
		})
	}

	switch format {
	case "pretty":
		for _, r := range records {
			fmt.Printf("%4d:%-4d %-9s %q\n", r.Line, r.Column, r.Type, r.Literal)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return err
		}
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(records); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if illegal > 0 {
		log.Noticef("%s: %d illegal tokens", filePath, illegal)
		return errDiagnostics
	}
	return nil
}
