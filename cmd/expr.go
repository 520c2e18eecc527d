package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/expr"
)

var exprCmd = &cobra.Command{
	Use:   "expr",
	Short: "Expression conversion and evaluation tools",
}

// --- seeksim expr postfix ---

var exprPostfixCmd = &cobra.Command{
	Use:   "postfix",
	Short: "Convert an infix expression to postfix",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPostfix(os.Stdin, os.Stdout); err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
	},
}

// --- seeksim expr prefix ---

var exprPrefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Evaluate a prefix expression of single-digit operands",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrefix(os.Stdin, os.Stdout); err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
	},
}

// readLine reads one line from in and trims surrounding whitespace.
// A final unterminated line is accepted.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runPostfix(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Enter infix expression: ")
	line, err := readLine(in)
	if err != nil {
		return fmt.Errorf("reading expression: %w", err)
	}
	postfix, err := expr.InfixToPostfix(line)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Postfix expression: %s\n", postfix)
	return nil
}

func runPrefix(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Enter prefix expression (example: +23): ")
	line, err := readLine(in)
	if err != nil {
		return fmt.Errorf("reading expression: %w", err)
	}
	result, err := expr.EvalPrefix(line)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Result = %d\n", result)
	return nil
}

func init() {
	exprCmd.AddCommand(exprPostfixCmd)
	exprCmd.AddCommand(exprPrefixCmd)
	rootCmd.AddCommand(exprCmd)
}
