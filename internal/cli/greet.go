package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eve-scout/internal/greet"
)

func newGreetCommand() *cobra.Command {
	var (
		name     string
		language string
	)

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a friendly greeting",
		Long: fmt.Sprintf(`Print a friendly greeting in one of the supported languages (%s).
An unknown language code falls back to English.`, strings.Join(greet.Languages(), ", ")),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(greet.Build(name, language))
		},
	}

	cmd.Flags().StringVar(&name, "name", "world", "Name to greet")
	cmd.Flags().StringVar(&language, "lang", "en",
		fmt.Sprintf("Language code for the greeting (%s)", strings.Join(greet.Languages(), "|")))

	return cmd
}
