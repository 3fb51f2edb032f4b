package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sloc/internal/languages"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示可选语言、行注释标记以及对应文件后缀。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示可统计语言、注释标记及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tMARKER\tEXTENSIONS"); err != nil {
				return err
			}

			for _, item := range registry.Languages() {
				if _, err := fmt.Fprintf(
					writer,
					"%s\t%s\t%s\n",
					item.Name,
					item.Marker,
					strings.Join(item.Extensions, ", "),
				); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
