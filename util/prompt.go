package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

func readLine() string {
	response, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		panic(err)
	}
	return strings.TrimSpace(response)
}

func PromptString(prompt string, def string) string {
	fmt.Fprintf(Stdout, "%s (%s): ", prompt, def)

	response := readLine()
	if response == "" {
		return def
	}
	return response
}

func PromptYN(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(Stdout, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(Stdout, "%s (y/N): ", prompt)
	}

	response := readLine()
	if response == "" {
		return def
	}
	return strings.ToLower(response) == "y"
}
