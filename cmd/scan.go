package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sloc/internal/config"
	"sloc/internal/languages"
	"sloc/internal/model"
	"sloc/internal/report"
	"sloc/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	cfgFile       string
	language      string
	ignore        []string
	perFile       bool
	totalOnly     bool
	includeHidden bool
	format        string
	output        string
	workers       int
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	sloc scan .
//	sloc scan src tests -i build -i '*.gen.py'
//	sloc scan ./project --language go --format json --output result.json
func newScanCmd(registry *languages.Registry, rootOpts *rootOptions) *cobra.Command {
	options := scanOptions{
		language: "python",
		format:   "table",
		output:   "output.json",
	}

	scanCmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "扫描一个或多个根路径并输出 SLOC 统计",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			logger := rootOpts.newLogger(cmd.ErrOrStderr())
			fs := afero.NewOsFs()

			cfg, err := config.Load(fs, options.cfgFile)
			if err != nil {
				return err
			}
			if cfg.Path != "" {
				logger.Debug("using config file", "path", cfg.Path)
			}

			// flag 优先，未显式指定的值才由配置文件补齐。
			if !cmd.Flags().Changed("language") && cfg.Language != "" {
				options.language = cfg.Language
			}
			if !cmd.Flags().Changed("include-hidden") {
				options.includeHidden = cfg.IncludeHidden
			}
			if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
				options.workers = cfg.Workers
			}
			patterns := append(append([]string(nil), cfg.Ignore...), options.ignore...)

			language, ok := registry.ByName(options.language)
			if !ok {
				return fmt.Errorf("unsupported language: %s", options.language)
			}

			service := scanner.NewService(fs, scanner.Options{
				Language:      language,
				Patterns:      patterns,
				IncludeHidden: options.includeHidden,
				Workers:       options.workers,
			}, logger)

			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			perFile := options.perFile && !options.totalOnly
			results := make([]model.ScanResult, 0, len(roots))
			var combined int64

			for _, root := range roots {
				result, scanErr := service.CountLOC(root, perFile)
				if scanErr != nil {
					return scanErr
				}
				results = append(results, result)
				combined += result.Total.Lines
			}

			out := cmd.OutOrStdout()

			switch format {
			case "table":
				for i, result := range results {
					if i > 0 {
						if _, err := fmt.Fprintln(out); err != nil {
							return err
						}
					}
					if err := report.PrintTable(out, result); err != nil {
						return err
					}
				}
			case "json":
				if err := report.PrintJSON(out, results); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, results); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(out, "\nJSON exported to %s\n", outputPath)
			}

			if len(roots) > 1 {
				_, _ = fmt.Fprintf(out, "\nCombined total across %d paths: %d SLOC\n", len(roots), combined)
			}
			return nil
		},
	}

	scanCmd.Flags().StringVar(&options.cfgFile, "config", "", "配置文件路径，默认查找 ./.sloc.yaml 和 ~/.sloc.yaml")
	scanCmd.Flags().StringVarP(&options.language, "language", "l", options.language, "统计目标语言，见 sloc language")
	scanCmd.Flags().StringArrayVarP(&options.ignore, "ignore", "i", nil, "glob 排除模式，可重复指定")
	scanCmd.Flags().BoolVarP(&options.perFile, "per-file", "p", true, "输出逐文件明细（默认开启）")
	scanCmd.Flags().BoolVar(&options.totalOnly, "total-only", false, "只输出总计，不输出逐文件明细")
	scanCmd.MarkFlagsMutuallyExclusive("per-file", "total-only")
	scanCmd.Flags().BoolVar(&options.includeHidden, "include-hidden", false, "统计点号开头的隐藏文件和目录")
	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	scanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	scanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量，0 表示按 CPU 数")

	return scanCmd
}
