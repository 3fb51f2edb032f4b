// Package ignore 实现扫描路径的排除判定。
// 判定顺序：先执行隐藏路径策略，再做 glob 模式匹配；
// 每个模式会扩展出多个候选形态，分别与相对路径、绝对路径、
// 文件名三种目标比较，任意一次命中即排除。
package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	log "github.com/charmbracelet/log"
)

// hiddenPrefix 是隐藏路径标记，点号开头的名字默认不参与统计。
const hiddenPrefix = "."

// Matcher 保存一次扫描内不变的排除配置。
// root、模式列表和隐藏开关由调用方提供，扫描期间只读。
type Matcher struct {
	rootAbs       string
	patterns      []string
	includeHidden bool
	logger        *log.Logger
}

// New 创建排除判定器。root 会先解析为绝对路径，
// 后续所有相对形态都以它为基准。
func New(root string, patterns []string, includeHidden bool, logger *log.Logger) (*Matcher, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	return &Matcher{
		rootAbs:       rootAbs,
		patterns:      patterns,
		includeHidden: includeHidden,
		logger:        logger,
	}, nil
}

// ShouldIgnore 判断路径是否应被排除。
// 结果只取决于输入，相同输入永远得到相同结论。
func (m *Matcher) ShouldIgnore(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	// 相对形态计算失败时（例如跨盘符）退回绝对路径参与匹配，
	// 失败是显式返回值，不做异常吞没。
	rel, ok := relativeTo(absPath, m.rootAbs)
	if !ok {
		rel = absPath
	}
	name := filepath.Base(path)

	// 隐藏路径策略优先于模式匹配，即使模式列表为空也要执行。
	if !m.includeHidden && strings.HasPrefix(name, hiddenPrefix) {
		m.logger.Warn("skipping hidden path", "path", path)
		return true
	}

	if len(m.patterns) == 0 {
		return false
	}

	targets := []string{rel, absPath, name}

	for _, pattern := range m.patterns {
		for _, candidate := range m.candidateForms(pattern) {
			for _, target := range targets {
				matched, matchErr := doublestar.Match(
					filepath.ToSlash(candidate),
					filepath.ToSlash(target),
				)
				if matchErr != nil {
					// 非法模式不应让整个判定失败，记录后继续。
					m.logger.Debug("bad ignore pattern", "pattern", candidate, "error", matchErr)
					continue
				}
				if matched {
					m.logger.Debug("ignoring path", "path", path, "pattern", pattern)
					return true
				}
			}
		}
	}

	return false
}

// candidateForms 为一个模式扩展出全部候选形态：
// 模式本身，外加它的绝对/相对互补形态。
// 这样用户写 build 这类相对 glob 或完全限定的绝对 glob 都能命中。
func (m *Matcher) candidateForms(pattern string) []string {
	candidates := []string{pattern}

	if filepath.IsAbs(pattern) {
		if rel, ok := relativeTo(pattern, m.rootAbs); ok {
			candidates = append(candidates, rel)
		}
	} else {
		candidates = append(candidates, filepath.Join(m.rootAbs, pattern))
	}

	return candidates
}

// relativeTo 计算 path 相对 base 的形态。
// 无公共根（例如 Windows 上不同盘符）时返回 false。
func relativeTo(path string, base string) (string, bool) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	return rel, true
}
