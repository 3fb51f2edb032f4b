// Package scanner 提供目录遍历、单文件统计和结果聚合能力。
// 该层负责把排除判定、后缀过滤和并发执行串起来，
// 不负责行级分类细节（见 languages 包）。
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	log "github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"sloc/internal/ignore"
	"sloc/internal/languages"
	"sloc/internal/model"
)

// Options 存放一次扫描内不变的配置。
type Options struct {
	// Language 是统计目标语言，决定后缀过滤和注释标记。
	Language languages.Language
	// Patterns 是 glob 排除模式列表，可以为空。
	Patterns []string
	// IncludeHidden 为 true 时隐藏路径也参与统计。
	IncludeHidden bool
	// Workers 是并发统计的 worker 数量。
	Workers int
}

// Service 是扫描服务对象。
// 文件系统通过 afero 注入，测试可以换成内存实现。
type Service struct {
	fs      afero.Fs
	options Options
	logger  *log.Logger
}

// fileResult 表示单文件统计产物。
type fileResult struct {
	path    string
	lines   int64
	readErr error
}

// NewService 创建扫描服务。
func NewService(fs afero.Fs, options Options, logger *log.Logger) *Service {
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	return &Service{
		fs:      fs,
		options: options,
		logger:  logger,
	}
}

// IterFiles 惰性枚举 root 下全部候选源文件的绝对路径。
// 序列单趟消费、有限长度；目录在下钻之前完成排除判定，
// 被排除的子树整体跳过，不会逐文件检查。
//
// 错误策略：root 无法 stat 属于构造期失败，直接返回错误；
// 遍历过程中某个子目录不可读只会跳过该子树并记录日志，
// 不会中断整体扫描。
func (s *Service) IterFiles(root string) (<-chan string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := s.fs.Stat(rootAbs)
	if err != nil {
		return nil, fmt.Errorf("stat root path: %w", err)
	}

	matcher, err := ignore.New(rootAbs, s.options.Patterns, s.options.IncludeHidden, s.logger)
	if err != nil {
		return nil, err
	}

	// 用户直接指定单文件时不做排除判定，只校验后缀。
	if !info.IsDir() && !s.options.Language.HasExtension(rootAbs) {
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(rootAbs))
	}

	files := make(chan string, s.options.Workers*4)

	if !info.IsDir() {
		files <- rootAbs
		close(files)
		return files, nil
	}

	go func() {
		defer close(files)

		walkErr := afero.Walk(s.fs, rootAbs, func(path string, entry os.FileInfo, inErr error) error {
			if inErr != nil {
				// 子目录列举失败按“跳过并继续兄弟节点”处理。
				s.logger.Warn("skipping unreadable path", "path", path, "error", inErr)
				return nil
			}

			// root 自身不参与排除判定，只有它的子孙需要检查。
			if path == rootAbs {
				return nil
			}

			if entry.IsDir() {
				if matcher.ShouldIgnore(path) {
					return filepath.SkipDir
				}
				return nil
			}

			if matcher.ShouldIgnore(path) {
				return nil
			}
			// 后缀过滤在排除/隐藏判定之后执行。
			if !s.options.Language.HasExtension(path) {
				return nil
			}

			s.logger.Debug("found source file", "path", path)
			files <- path
			return nil
		})
		if walkErr != nil {
			s.logger.Warn("walk aborted", "root", rootAbs, "error", walkErr)
		}
	}()

	return files, nil
}

// CountLOC 扫描 root 并返回统计结果。
// perFile 为 true 时结果携带“绝对路径 → SLOC”映射，
// 否则只计算总计。统计过程按 Options.Workers 并发执行，
// 求和与执行顺序无关。
func (s *Service) CountLOC(root string, perFile bool) (model.ScanResult, error) {
	files, err := s.IterFiles(root)
	if err != nil {
		return model.ScanResult{}, err
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("resolve root path: %w", err)
	}

	results := make(chan fileResult, s.options.Workers*4)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.options.Workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for path := range files {
				lines, readErr := s.countFileLines(path)
				if readErr != nil {
					// 读取失败可恢复：记录日志，按 0 行计入结果。
					s.logger.Warn("failed to read file", "path", path, "error", readErr)
				}
				results <- fileResult{path: path, lines: lines, readErr: readErr}
			}
		}()
	}

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result := model.ScanResult{
		Root:   rootAbs,
		Errors: make([]model.ScanError, 0),
	}

	for item := range results {
		result.AddFile(item.path, item.lines, perFile)
		if item.readErr != nil {
			result.Errors = append(result.Errors, model.ScanError{
				Path:  item.path,
				Error: item.readErr.Error(),
			})
		}
	}

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	s.logger.Info("scan finished",
		"root", rootAbs,
		"files", result.Total.Files,
		"sloc", result.Total.Lines,
	)
	return result, nil
}

// countFileLines 统计单文件 SLOC。
// 任何打开或读取失败都返回 0 行加错误，由调用方决定日志与聚合；
// 文件句柄在所有退出路径上都会关闭。
func (s *Service) countFileLines(path string) (int64, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Debug("close file", "path", path, "error", closeErr)
		}
	}()

	marker := s.options.Language.Marker
	var lines int64

	// 按行流式读取，不限制单行长度；
	// 非法字节序列原样进入字符串，不会让读取失败。
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if errors.Is(readErr, io.EOF) && len(line) == 0 {
			break
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return 0, readErr
		}

		if languages.IsCodeLine(normalizeLine(line), marker) {
			lines++
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	return lines, nil
}

// normalizeLine 去除行尾换行符，适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}
