package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/communication-service/internal/credential"
)

// NewHashPasswordCmd creates the hash-password subcommand. The password is
// read from stdin so it does not end up in shell history.
func NewHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print the stored credential artifact for a password read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}

			artifact, err := credential.NewPBKDF2Hasher().Hash(password)
			if err != nil {
				return err
			}

			cmd.Println(artifact)
			return nil
		},
	}
}

// readPassword returns the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", oops.Code("INPUT_INVALID").Wrapf(err, "read password")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
