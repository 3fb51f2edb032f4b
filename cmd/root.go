// Package cmd 提供 sloc 的命令行入口与子命令编排。
package cmd

import (
	"io"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sloc/internal/languages"
)

// rootOptions 存放根命令上的全局输出控制参数。
type rootOptions struct {
	verbose bool
	quiet   bool
}

// newLogger 按 verbose/quiet 构造诊断日志器。
// 日志器从这里向下注入，internal 各包不持有任何全局 logger。
func (o *rootOptions) newLogger(writer io.Writer) *log.Logger {
	level := log.InfoLevel
	if o.quiet {
		level = log.ErrorLevel
	}
	if o.verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(writer, log.Options{
		Level:  level,
		Prefix: "sloc",
	})
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	options := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sloc",
		Short: "按语言统计源代码行数（SLOC）的命令行工具",
		Long: "sloc 递归扫描一个或多个根路径，统计指定语言的源代码行数，\n" +
			"空行、整行注释和剥离行内注释后只剩空白的行不计入。\n" +
			"支持 glob 排除模式、隐藏路径策略和 JSON 导出。",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "输出调试级日志")
	rootCmd.PersistentFlags().BoolVarP(&options.quiet, "quiet", "q", false, "只输出错误级日志")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry, options))

	return rootCmd
}
