// Package report 提供 sloc 的输出能力。
// 当前实现支持 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"sloc/internal/model"
)

// PrintTable 使用表格展示单个根路径的扫描结果。
// 携带 per-file 映射时逐文件列出，否则只打印总计。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", result.Root); err != nil {
		return err
	}

	if result.PerFile != nil {
		if _, err := fmt.Fprintln(tw, "SLOC\tFILE"); err != nil {
			return err
		}
		for _, path := range sortedPaths(result.PerFile) {
			if _, err := fmt.Fprintf(
				tw,
				"%d\t%s\n",
				result.PerFile[path],
				displayPath(path, result.Root),
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"TOTAL\t%d files\t%d SLOC\n",
		result.Total.Files,
		result.Total.Lines,
	); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintln(tw, "\nERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range result.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Path, item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// PrintJSON 把全部根路径的扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, results []model.ScanResult) error {
	content, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, results []model.ScanResult) error {
	content, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

// sortedPaths 返回映射键的有序副本，保证输出稳定。
func sortedPaths(perFile map[string]int64) []string {
	paths := make([]string, 0, len(perFile))
	for path := range perFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// displayPath 优先展示相对 root 的形态，算不出来就退回绝对路径。
func displayPath(path string, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
