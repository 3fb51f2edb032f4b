// Package languages 管理语言描述信息和行级分类规则。
// 本工具按“行注释标记”做朴素分类，不做语法解析，
// 因此每种语言只需要名称、后缀列表和注释标记三项元数据。
package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language 描述一种可统计的语言。
type Language struct {
	// Name 是语言名称（例如 Python、Go）。
	Name string
	// Extensions 是该语言支持的后缀列表（包含点号，如 .py）。
	Extensions []string
	// Marker 是行注释标记（如 #、//、--）。
	Marker string
}

// HasExtension 判断文件名是否携带该语言的后缀。
// 后缀比较不区分大小写。
func (l Language) HasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range l.Extensions {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}

// Registry 管理语言注册与名称映射。
type Registry struct {
	languages []Language
	byName    map[string]Language
}

// NewRegistry 创建并注册所有内置语言。
// 默认统计目标是 Python，与 scan 命令的 --language 默认值一致。
func NewRegistry() *Registry {
	items := []Language{
		{Name: "Python", Extensions: []string{".py"}, Marker: "#"},
		{Name: "Ruby", Extensions: []string{".rb"}, Marker: "#"},
		{Name: "Shell", Extensions: []string{".sh", ".bash"}, Marker: "#"},
		{Name: "Perl", Extensions: []string{".pl", ".pm"}, Marker: "#"},
		{Name: "YAML", Extensions: []string{".yaml", ".yml"}, Marker: "#"},
		{Name: "TOML", Extensions: []string{".toml"}, Marker: "#"},
		{Name: "Go", Extensions: []string{".go"}, Marker: "//"},
		{Name: "JavaScript", Extensions: []string{".js", ".mjs"}, Marker: "//"},
		{Name: "TypeScript", Extensions: []string{".ts", ".tsx"}, Marker: "//"},
		{Name: "SQL", Extensions: []string{".sql"}, Marker: "--"},
	}

	registry := &Registry{
		languages: items,
		byName:    make(map[string]Language, len(items)),
	}
	for _, item := range items {
		registry.byName[strings.ToLower(item.Name)] = item
	}

	return registry
}

// ByName 按名称查找语言，名称比较不区分大小写。
func (r *Registry) ByName(name string) (Language, bool) {
	language, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return language, ok
}

// Languages 返回已注册语言清单，按名称排序。
func (r *Registry) Languages() []Language {
	result := make([]Language, 0, len(r.languages))
	for _, item := range r.languages {
		extensions := append([]string(nil), item.Extensions...)
		sort.Strings(extensions)
		item.Extensions = extensions
		result = append(result, item)
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// IsCodeLine 判断一行文本是否属于源代码。
//
// 规则：
// - 去掉首尾空白后为空 → 非代码
// - 以注释标记开头 → 整行注释，非代码
// - 否则截取第一个注释标记之前的部分，去空白后仍非空才算代码
//
// 已知限制：不识别字符串字面量，字符串内出现注释标记也会被
// 当作注释起点。这是刻意保留的既有行为，不要悄悄“修复”。
func IsCodeLine(line string, marker string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if strings.HasPrefix(stripped, marker) {
		return false
	}

	codePart, _, _ := strings.Cut(stripped, marker)
	return strings.TrimSpace(codePart) != ""
}
